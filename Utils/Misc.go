package Utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Hang blocks until a termination signal arrives or Ctx ends.
func Hang(Ctx context.Context) {

	SignalChan := make(chan os.Signal, 1)

	signal.Notify(SignalChan, syscall.SIGINT, syscall.SIGTERM) // Listens for termination signals
	defer signal.Stop(SignalChan)

	select {

		case <-SignalChan:

		case <-Ctx.Done():

	}

}
