package Commands

import (
	"Encore/Playback"
	"Encore/Utils"
	"Encore/Validation"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/events"
)

func (P *Player) Play(Event *events.GuildMessageCreate, Args []string) {

	Query := strings.TrimSpace(strings.Join(Args, " "))

	ChannelID, InVoice := Validation.VoiceChannel(Event.GuildID, Event.Message.Author.ID)

	if !InVoice {

		P.reply(Event, Utils.EmbedOptions{

			Title:       "❌ Voice Channel Required",
			Description: "You need to be in a voice channel to play music!",
			Footer:      "Join a voice channel and try again",
			Color:       Utils.ERROR,

		})

		return

	}

	if Query == "" {

		P.reply(Event, Utils.EmbedOptions{

			Title:       "🎵 Song Required",
			Description: "Please provide a song name and artist!",
			Footer:      "Song titles only - No URLs allowed!",
			Color:       Utils.WARNING,

		}.Field("✅ Correct Usage", fmt.Sprintf("`%[1]splay Never Gonna Give You Up - Rick Astley`\n`%[1]splay Despacito`", P.Prefix), false))

		return

	}

	if Validation.IsURL(Query) {

		P.reply(Event, Utils.EmbedOptions{

			Title:       "🚫 URLs Not Allowed",
			Description: "Please do not use URLs! Only provide the song title and artist name.",
			Footer:      "Try again with just the song title and artist name",
			Color:       Utils.ERROR,

		}.Field("✅ What TO do instead", fmt.Sprintf("`%splay Shape of You Ed Sheeran`", P.Prefix), false))

		return

	}

	Request := Playback.Request{

		GuildID:   Event.GuildID.String(),
		ChannelID: ChannelID.String(),
		Requestor: Event.Message.Author.Mention(),
		Query:     Query,

	}

	P.reply(Event, P.PlayReply(Request))

}

// PlayReply queues Request through the pipeline and renders the result.
func (P *Player) PlayReply(Request Playback.Request) Utils.EmbedOptions {

	var Queued Playback.Track

	return P.run(Request.GuildID, "play", func(Ctx context.Context) error {

		Track, ErrorPlaying := P.Engine.Play(Ctx, Request)

		if ErrorPlaying != nil {

			return ErrorPlaying

		}

		Queued = Track

		return nil

	}, func() Utils.EmbedOptions {

		Options := PlayEmbed(Queued)

		if Queued.Thumbnail != "" {

			ColorContext, CancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
			Options.Color, _ = Utils.GetDominantColorHex(ColorContext, Queued.Thumbnail)
			CancelFunc()

		}

		return Options

	})

}

// PlayEmbed renders a track that was just queued.
func PlayEmbed(Queued Playback.Track) Utils.EmbedOptions {

	Title := "✅ Song Added to Queue"

	if Queued.Position == 1 {

		Title = "🎵 Now Playing"

	}

	return Utils.EmbedOptions{

		Title:       Title,
		Description: fmt.Sprintf("**[%s](%s)**", Queued.Title, Queued.URL),
		Thumbnail:   Queued.Thumbnail,
		Footer:      fmt.Sprintf("Position in queue: %d", Queued.Position),

	}.Field("⏱️ Duration", fmt.Sprintf("`%s`", formatDuration(Queued.Duration)), true).Field("👤 Requested by", requestedBy(Queued), true)

}

func requestedBy(Queued Playback.Track) string {

	if Queued.Requestor == "" {

		return "Unknown"

	}

	return Queued.Requestor

}
