// Package main is the entry point for the rutero CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/maparra/rutero/internal/cli"
	"github.com/maparra/rutero/internal/logging"
)

func main() {
	// Optional .env for local development; real deployments use the
	// config file or exported variables.
	_ = godotenv.Load()

	logging.Setup(os.Getenv("RUTERO_VERBOSE") != "")

	// Interrupts cancel whatever network operation is in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
