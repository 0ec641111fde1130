package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
