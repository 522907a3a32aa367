package Commands

import (
	"Encore/Playback"
	"Encore/Utils"
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/events"
)

func (P *Player) Stop(Event *events.GuildMessageCreate) {

	P.reply(Event, P.StopReply(Event.GuildID.String()))

}

func (P *Player) Skip(Event *events.GuildMessageCreate) {

	P.reply(Event, P.SkipReply(Event.GuildID.String()))

}

func (P *Player) StopReply(GuildID string) Utils.EmbedOptions {

	Cleared := 0

	return P.run(GuildID, "stop", func(context.Context) error {

		Cleared = P.Queue.Clear(GuildID)
		return nil

	}, func() Utils.EmbedOptions {

		return StopEmbed(Cleared, P.Prefix)

	})

}

func (P *Player) SkipReply(GuildID string) Utils.EmbedOptions {

	var Skipped Playback.Track
	var Remaining int
	var ErrorSkipping error

	// Empty or single-track queues are answers, not pipeline failures
	return P.run(GuildID, "skip", func(context.Context) error {

		Skipped, Remaining, ErrorSkipping = P.Queue.Skip(GuildID)
		return nil

	}, func() Utils.EmbedOptions {

		return SkipEmbed(Skipped, Remaining, ErrorSkipping, P.Prefix)

	})

}

func StopEmbed(Cleared int, Prefix string) Utils.EmbedOptions {

	if Cleared == 0 {

		return nothingPlaying(Prefix)

	}

	return Utils.EmbedOptions{

		Title:       "⏹️ Music Stopped",
		Description: fmt.Sprintf("Stopped the music and cleared %d songs from the queue.", Cleared),
		Footer:      fmt.Sprintf("Use %splay to start again", Prefix),
		Color:       Utils.SUCCESS,

	}

}

func SkipEmbed(Skipped Playback.Track, Remaining int, ErrorSkipping error, Prefix string) Utils.EmbedOptions {

	switch {

		case errors.Is(ErrorSkipping, Playback.ErrNoNextTrack):

			return Utils.EmbedOptions{

				Title:       "❌ No Next Song",
				Description: "There are no more songs in the queue to skip to!",
				Footer:      fmt.Sprintf("Add more songs with %splay", Prefix),
				Color:       Utils.WARNING,

			}

		case ErrorSkipping != nil:

			return nothingPlaying(Prefix)

	}

	return Utils.EmbedOptions{

		Title:       "⏭️ Song Skipped",
		Description: fmt.Sprintf("Skipped **[%s](%s)**", Skipped.Title, Skipped.URL),
		Thumbnail:   Skipped.Thumbnail,
		Footer:      fmt.Sprintf("%d songs remaining in queue", Remaining),
		Color:       Utils.SUCCESS,

	}

}
