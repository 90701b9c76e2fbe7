// Swatch reports the dominant colours of images against a fixed palette.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
