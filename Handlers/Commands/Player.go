package Commands

import (
	"Encore/Globals"
	"Encore/Playback"
	"Encore/Requests"
	"Encore/Utils"
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"go.uber.org/zap"
)

// Player wires the chat commands to the request pipeline. Every engine or queue call goes through
// Pipeline, so all of them share the per-guild cooldown.
type Player struct {

	Pipeline *Requests.Pipeline
	Engine   Playback.Engine
	Queue    Playback.Queue
	Prefix   string

}

// run executes Operation for GuildID under Label and returns Render's embed once it succeeded, or
// the outcome's own embed otherwise.
func (P *Player) run(GuildID string, Label string, Operation func(context.Context) error, Render func() Utils.EmbedOptions) Utils.EmbedOptions {

	Outcome := P.Pipeline.Execute(context.Background(), GuildID, Label, Operation)

	if Options, Unsuccessful := OutcomeEmbed(Outcome, P.Prefix); Unsuccessful {

		return Options

	}

	return Render()

}

// OutcomeEmbed renders a rejected or failed outcome. The bool is false for a success, which the
// command renders itself.
func OutcomeEmbed(Outcome Requests.Outcome, Prefix string) (Utils.EmbedOptions, bool) {

	switch {

		case Outcome.Status == Requests.StatusRejected:

			return Utils.EmbedOptions{

				Title:       "⏳ Slow Down",
				Description: fmt.Sprintf("Please wait %s before sending another command.", waitText(Outcome.RetryAfter)),
				Color:       Utils.WARNING,

			}, true

		case Outcome.RateLimited():

			return Utils.EmbedOptions{

				Title:       "⏳ Rate Limited",
				Description: fmt.Sprintf("The music service is busy. Gave up after %d attempts, try again in a moment.", Outcome.Attempts),
				Footer:      fmt.Sprintf("Example: %splay Despacito Luis Fonsi", Prefix),
				Color:       Utils.WARNING,

			}, true

		case Outcome.Status == Requests.StatusFailed:

			Message := "unknown error"

			if Outcome.Err != nil {

				Message = Outcome.Err.Error()

			}

			return Utils.EmbedOptions{

				Title:       "❌ Playback Error",
				Description: fmt.Sprintf("Unable to find or play the requested song: `%s`", truncate(Message, 100)),
				Footer:      fmt.Sprintf("Example: %splay Despacito Luis Fonsi", Prefix),
				Color:       Utils.ERROR,

			}.Field("💡 Troubleshooting Tips", "• Check your spelling\n• Try adding the artist name\n• Use more specific search terms", false), true

	}

	return Utils.EmbedOptions{}, false

}

// truncate cuts Message to Limit runes.
func truncate(Message string, Limit int) string {

	Runes := []rune(Message)

	if len(Runes) <= Limit {

		return Message

	}

	return string(Runes[:Limit]) + "..."

}

func waitText(RetryAfter time.Duration) string {

	Seconds := int((RetryAfter + time.Second - 1) / time.Second)

	if Seconds <= 1 {

		return "1 second"

	}

	return fmt.Sprintf("%d seconds", Seconds)

}

// formatDuration renders a track length as m:ss, or h:mm:ss past an hour.
func formatDuration(Duration time.Duration) string {

	if Duration <= 0 {

		return "Live"

	}

	Total := int(Duration.Round(time.Second) / time.Second)

	if Total >= 3600 {

		return fmt.Sprintf("%d:%02d:%02d", Total/3600, Total%3600/60, Total%60)

	}

	return fmt.Sprintf("%d:%02d", Total/60, Total%60)

}

func nothingPlaying(Prefix string) Utils.EmbedOptions {

	return Utils.EmbedOptions{

		Title:       "❌ Nothing Playing",
		Description: "There's no music currently playing!",
		Footer:      fmt.Sprintf("Use %splay to start playing music", Prefix),
		Color:       Utils.WARNING,

	}

}

func (P *Player) reply(Event *events.GuildMessageCreate, Options Utils.EmbedOptions) {

	Options.Timestamp = true

	MessageID := Event.Message.ID

	_, ErrorSending := Globals.DiscordClient.Rest.CreateMessage(Event.ChannelID, discord.MessageCreate{

		Embeds:           []discord.Embed{Utils.CreateEmbed(Options)},
		MessageReference: &discord.MessageReference{MessageID: &MessageID},

	})

	if ErrorSending != nil {

		Utils.Logger.Error("Failed to send reply", zap.String("guild", Event.GuildID.String()), zap.Error(ErrorSending))

	}

}
