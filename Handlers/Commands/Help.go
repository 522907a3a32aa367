package Commands

import (
	"Encore/Utils"
	"fmt"

	"github.com/disgoorg/disgo/events"
)

// Help and unknown-command replies never reach the engine, so they bypass the pipeline.

func (P *Player) Help(Event *events.GuildMessageCreate) {

	P.reply(Event, HelpEmbed(P.Prefix))

}

func (P *Player) Unknown(Event *events.GuildMessageCreate) {

	P.reply(Event, UnknownEmbed(P.Prefix))

}

func HelpEmbed(Prefix string) Utils.EmbedOptions {

	return Utils.EmbedOptions{

		Title:       "🎵 Music Bot Commands",
		Description: "Here are all the available commands to control your music experience!",
		Footer:      "Join a voice channel to get started!",
		Color:       0x3498DB,

	}.Field(

		"🎵 Music Controls",
		fmt.Sprintf("`%[1]splay <song_title>` - Play a song from YouTube\n`%[1]sstop` - Stop music and clear queue\n`%[1]sskip` - Skip the current song", Prefix),
		false,

	).Field(

		"📋 Queue Management",
		fmt.Sprintf("`%[1]squeue` - Show the current queue\n`%[1]snowplaying` - Show current song info", Prefix),
		false,

	).Field(

		"💡 Tips",
		fmt.Sprintf("• `%[1]sp` is short for `%[1]splay`\n• `%[1]ss` is short for `%[1]sskip`\n• `%[1]sq` is short for `%[1]squeue`\n• `%[1]snp` is short for `%[1]snowplaying`", Prefix),
		false,

	)

}

func UnknownEmbed(Prefix string) Utils.EmbedOptions {

	return Utils.EmbedOptions{

		Title:       "❌ Unknown Command",
		Description: "That command doesn't exist!",
		Footer:      "Check your spelling and try again",
		Color:       Utils.ERROR,

	}.Field("💡 Need Help?", fmt.Sprintf("Use `%shelp` to see all available commands", Prefix), false)

}
