package main

import (
	"Encore/Admission"
	"Encore/Globals"
	"Encore/Handlers"
	"Encore/Handlers/Commands"
	"Encore/Playback"
	"Encore/Requests"
	"Encore/Retry"
	"Encore/Server"
	"Encore/Utils"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {

	Config, ErrorLoading := Globals.LoadConfig()

	if ErrorLoading != nil {

		fmt.Fprintln(os.Stderr, "Failed to load config:", ErrorLoading)
		os.Exit(1)

	}

	Logger, ErrorLogging := Utils.NewLogging(Config.LogLevel)

	if ErrorLogging != nil {

		fmt.Fprintln(os.Stderr, "Failed to create logger:", ErrorLogging)
		os.Exit(1)

	}

	Utils.Logger = Logger
	defer Logger.Sync()

	ContextToUse, CancelFunc := context.WithCancel(context.Background())
	defer CancelFunc()

	// Admission store: shared through Redis when configured, in-process otherwise

	var Store Admission.Store

	if Config.RedisURL != "" {

		RedisStore, ErrorConnecting := Admission.NewRedisStore(Config.RedisURL)

		if ErrorConnecting != nil {

			Logger.Error("Failed to connect to Redis", zap.Error(ErrorConnecting))
			os.Exit(1)

		}

		defer RedisStore.Close()

		Store = RedisStore

	} else {

		MemoryStore := Admission.NewMemoryStore(Config.AdmissionCapacity)
		MemoryStore.StartAutoCleanup(ContextToUse, Config.AdmissionSweep)

		Store = MemoryStore

	}

	Executor, ErrorCreating := Retry.NewExecutor(Config.RetryConfig(), Logger)

	if ErrorCreating != nil {

		Logger.Error("Invalid retry configuration", zap.Error(ErrorCreating))
		os.Exit(1)

	}

	Pipeline := Requests.NewPipeline(Admission.NewGate(Store, Config.Cooldown, Logger), Executor, Config.RequestTimeout, Logger)
	Engine := Playback.NewYtDlp(Config.YtDlpPath, Config.QueueLimit, Config.QueueIdle, Logger)
	Engine.StartAutoCleanup(ContextToUse, Config.QueueSweep)

	// Web server and outcome feed

	Hub := Server.NewHub()
	Pipeline.Observe(Hub.Broadcast)

	go func() {

		if ErrorServing := Server.Start(ContextToUse, Server.NewRouter(Hub), Config.Port); ErrorServing != nil {

			Logger.Error("Web server stopped", zap.Error(ErrorServing))
			CancelFunc()

		}

	}()

	// Discord

	if Config.DiscordToken == "" {

		Logger.Error("DISCORD_TOKEN is not set")
		os.Exit(1)

	}

	if ErrorInitializing := Globals.InitDiscordClient(Config.DiscordToken); ErrorInitializing != nil {

		Logger.Error("Failed to create Discord client", zap.Error(ErrorInitializing))
		os.Exit(1)

	}

	Handlers.InitializeHandlers(&Commands.Player{Pipeline: Pipeline, Engine: Engine, Queue: Engine, Prefix: Config.Prefix}, func(GuildID string) { Engine.Clear(GuildID) })

	if ErrorConnecting := Globals.ConnectDiscordClient(); ErrorConnecting != nil {

		Logger.Error("Failed to connect to Discord", zap.Error(ErrorConnecting))
		os.Exit(1)

	}

	Logger.Info("Bot started", zap.String("prefix", Config.Prefix), zap.Duration("cooldown", Config.Cooldown))

	Utils.Hang(ContextToUse)

	Logger.Info("Shutting down")

	CancelFunc()
	Globals.CloseDiscordClient()

}
