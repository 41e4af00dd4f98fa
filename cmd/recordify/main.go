package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/recordify/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCommand().Run(ctx, os.Args); err != nil {
		if errors.Is(err, app.ErrNothingPlaying) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "recordify: %v\n", err)
		return 1
	}
	return 0
}
