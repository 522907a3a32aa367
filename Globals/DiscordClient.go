package Globals

import (
	"context"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/gateway"
)

var DiscordClient *bot.Client

// InitDiscordClient creates the client with the intents prefixed commands need: guild messages,
// their content, and voice states to find the requester's channel.
func InitDiscordClient(Token string) error {

	InitializedClient, ErrorInitializing := disgo.New(Token,

		bot.WithGatewayConfigOpts(gateway.WithIntents(

			gateway.IntentGuilds,
			gateway.IntentGuildMessages,
			gateway.IntentMessageContent,
			gateway.IntentGuildVoiceStates,

		)),

		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds, cache.FlagVoiceStates)),

	)

	if ErrorInitializing != nil {

		return ErrorInitializing

	}

	DiscordClient = InitializedClient

	return nil

}

func ConnectDiscordClient() error {

	ContextToUse, CancelFunc := context.WithTimeout(context.TODO(), time.Second * 5); // 5s timeout
	defer CancelFunc()

	ErrorConnecting := DiscordClient.OpenGateway(ContextToUse)

	if ErrorConnecting != nil {

		return ErrorConnecting

	}

	return nil

}

func CloseDiscordClient() {

	if DiscordClient == nil {

		return

	}

	ContextToUse, CancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
	defer CancelFunc()

	DiscordClient.Close(ContextToUse)

}
