package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/risk-atlas/pkg/runtime/terminal"
	"github.com/de-tools/risk-atlas/pkg/services/bank"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	level := zerolog.WarnLevel
	if os.Getenv("RISK_ATLAS_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	b, err := bank.Default()
	if err != nil {
		logger.Fatal().Err(err).Msg("built-in question bank is unusable")
	}

	cli := terminal.NewCLI(terminal.Options{
		Bank:   b,
		Input:  os.Stdin,
		Output: os.Stdout,
	})

	if err := cli.ExecuteContext(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
