package Commands

import (
	"Encore/Playback"
	"Encore/Utils"
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/events"
)

// Upcoming tracks shown in the queue embed
const upNextShown = 10

func (P *Player) ShowQueue(Event *events.GuildMessageCreate) {

	P.reply(Event, P.QueueReply(Event.GuildID.String()))

}

func (P *Player) NowPlaying(Event *events.GuildMessageCreate) {

	P.reply(Event, P.NowPlayingReply(Event.GuildID.String()))

}

func (P *Player) QueueReply(GuildID string) Utils.EmbedOptions {

	var Pending []Playback.Track

	return P.run(GuildID, "queue", func(context.Context) error {

		Pending = P.Queue.Pending(GuildID)
		return nil

	}, func() Utils.EmbedOptions {

		return QueueEmbed(Pending, P.Prefix)

	})

}

func (P *Player) NowPlayingReply(GuildID string) Utils.EmbedOptions {

	var Pending []Playback.Track

	return P.run(GuildID, "nowplaying", func(context.Context) error {

		Pending = P.Queue.Pending(GuildID)
		return nil

	}, func() Utils.EmbedOptions {

		return NowPlayingEmbed(Pending, P.Prefix)

	})

}

// QueueEmbed lists the current track and up to ten upcoming ones.
func QueueEmbed(Pending []Playback.Track, Prefix string) Utils.EmbedOptions {

	if len(Pending) == 0 {

		return Utils.EmbedOptions{

			Title:       "📭 Empty Queue",
			Description: "The music queue is currently empty!",
			Footer:      "Add some music to get the party started!",
			Color:       Utils.WARNING,

		}.Field("💡 Get Started", fmt.Sprintf("Use `%splay <song name>` to add songs to the queue!", Prefix), false)

	}

	Current := Pending[0]

	Options := Utils.EmbedOptions{Title: "🎵 Music Queue", Color: Utils.QUEUE}.Field(

		"🎵 Now Playing",
		fmt.Sprintf("**[%s](%s)**\n⏱️ Duration: `%s` | 👤 %s", Current.Title, Current.URL, formatDuration(Current.Duration), requestedBy(Current)),
		false,

	)

	if len(Pending) == 1 {

		Options.Footer = fmt.Sprintf("Add more songs with %splay", Prefix)

		return Options

	}

	Upcoming := Pending[1:min(len(Pending), upNextShown+1)]
	Lines := make([]string, 0, len(Upcoming))

	for Index, Track := range Upcoming {

		Lines = append(Lines, fmt.Sprintf("**%d.** [%s](%s)\n⏱️ `%s` | 👤 %s", Index+1, Track.Title, Track.URL, formatDuration(Track.Duration), requestedBy(Track)))

	}

	Options = Options.Field("📋 Up Next", strings.Join(Lines, "\n\n"), false)

	if Hidden := len(Pending) - upNextShown - 1; Hidden > 0 {

		Options.Footer = fmt.Sprintf("And %d more songs... | Total: %d songs", Hidden, len(Pending))

	} else {

		Options.Footer = fmt.Sprintf("Total: %d songs in queue", len(Pending))

	}

	return Options

}

func NowPlayingEmbed(Pending []Playback.Track, Prefix string) Utils.EmbedOptions {

	if len(Pending) == 0 {

		return nothingPlaying(Prefix)

	}

	Current := Pending[0]

	return Utils.EmbedOptions{

		Title:       "🎵 Now Playing",
		Description: fmt.Sprintf("**[%s](%s)**", Current.Title, Current.URL),
		Thumbnail:   Current.Thumbnail,
		Footer:      fmt.Sprintf("Queue: %d songs", len(Pending)),
		Color:       0xE74C3C,

	}.Field("⏱️ Duration", fmt.Sprintf("`%s`", formatDuration(Current.Duration)), true).Field("👤 Requested by", requestedBy(Current), true)

}
