// Command farkle estimates the average Farkle score per scored roll by
// simulating games to 10,000 points.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jswartzendruber/farkle-stats/internal/cmd/farkle"
	platformcmd "github.com/jswartzendruber/farkle-stats/internal/platform/cmd"
	"github.com/jswartzendruber/farkle-stats/internal/platform/config"
)

func main() {
	cfg, err := farkle.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceFarkle, func(ctx context.Context) error {
		return farkle.Run(ctx, cfg, os.Stdout, os.Stderr)
	}); err != nil {
		stop()
		config.Exitf("%v", err)
	}
}
