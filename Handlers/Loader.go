package Handlers

import (
	"Encore/Globals"
	"Encore/Handlers/Commands"
	"Encore/Utils"
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"go.uber.org/zap"
)

// ParseCommand splits "<prefix>name arg arg" into a lowercase name and its arguments.
func ParseCommand(Content string, Prefix string) (string, []string, bool) {

	if Prefix == "" || !strings.HasPrefix(Content, Prefix) {

		return "", nil, false

	}

	Fields := strings.Fields(strings.TrimPrefix(Content, Prefix))

	if len(Fields) == 0 {

		return "", nil, false

	}

	return strings.ToLower(Fields[0]), Fields[1:], true

}

var Aliases = map[string]string{

	"play": "play", "p": "play",
	"skip": "skip", "s": "skip",
	"queue": "queue", "q": "queue",
	"nowplaying": "nowplaying", "np": "nowplaying",
	"stop": "stop",
	"help": "help",

}

// Resolve maps a typed command or alias to its command name.
func Resolve(Name string) (string, bool) {

	Command, Known := Aliases[Name]

	return Command, Known

}

// InitializeHandlers registers the gateway listeners. OnLeave runs when the bot is disconnected
// from voice in a guild.
func InitializeHandlers(Player *Commands.Player, OnLeave func(GuildID string)) {

	// Ready

	Globals.DiscordClient.AddEventListeners(bot.NewListenerFunc(func(Event *events.Ready) {

		Utils.Logger.Info("Discord Client is ready!", zap.String("user", Event.User.Username))

	}))

	// Prefixed commands

	Globals.DiscordClient.AddEventListeners(bot.NewListenerFunc(func(Event *events.GuildMessageCreate) {

		if Event.Message.Author.Bot {

			return

		}

		Name, Args, IsCommand := ParseCommand(Event.Message.Content, Player.Prefix)

		if !IsCommand {

			return

		}

		go func() {

			Command, Known := Resolve(Name)

			switch Command {

				case "play":

					Player.Play(Event, Args)

				case "skip":

					Player.Skip(Event)

				case "queue":

					Player.ShowQueue(Event)

				case "nowplaying":

					Player.NowPlaying(Event)

				case "stop":

					Player.Stop(Event)

				case "help":

					Player.Help(Event)

				default:

					Player.Unknown(Event)

			}

			Utils.Logger.Info("Received and handled command", zap.String("command", Name), zap.Bool("known", Known), zap.String("guild", Event.GuildID.String()))

		}()

	}))

	// Voice State Updates

	Globals.DiscordClient.AddEventListeners(bot.NewListenerFunc(func(Event *events.GuildVoiceStateUpdate) {

		if Event.VoiceState.UserID != Globals.DiscordClient.ApplicationID {

			return // Not our bot

		}

		if Event.VoiceState.ChannelID == nil && OnLeave != nil {

			OnLeave(Event.VoiceState.GuildID.String())

		}

	}))

	Utils.Logger.Info("Event handlers initialized.")

}
