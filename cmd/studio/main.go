package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/voxforge/studio/internal/cli"
	"github.com/voxforge/studio/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		tp, err := observability.InitTracer(ctx, "studio", cli.Version)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tracing disabled: %v\n", err)
		} else {
			defer tp.Shutdown(context.Background())
		}
	}

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
