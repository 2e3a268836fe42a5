package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"actions_lab/config"
	"actions_lab/profiles"
	"actions_lab/runner"
	"actions_lab/sysinfo"
	"actions_lab/utils"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Logs go to stderr, stdout carries the report
	configureLogging(os.Stderr, cfg.LogLevel)

	ctx := utils.WithRunID(context.Background())

	os.Exit(run(ctx, cfg, os.Stdout))
}

// run builds the demo runner from cfg and executes it against out
func run(ctx context.Context, cfg *config.Config, out io.Writer) int {
	profile, err := profiles.Load(cfg.Profile)
	if err != nil {
		log.Error().
			Str("run_id", utils.RunID(ctx)).
			Str("profile", cfg.Profile).
			Err(err).
			Msg("Failed to load profile")
		return 1
	}

	return execute(ctx, runner.New(out, profile, sysinfo.NewCollector()))
}

// execute runs r and translates any failure into a non-zero exit code
func execute(ctx context.Context, r *runner.Runner) int {
	if err := r.Run(ctx); err != nil {
		log.Error().
			Str("run_id", utils.RunID(ctx)).
			Err(err).
			Msg("Demo run failed")
		return 1
	}
	return 0
}

// configureLogging sets up the logger based on the provided log level
func configureLogging(out io.Writer, level string) {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
