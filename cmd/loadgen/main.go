package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personbench/internal/loadgen"

	"github.com/urfave/cli/v3"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	app := &cli.Command{
		Name:  "loadgen",
		Usage: "Drive the person endpoints at a fixed rate and report latency",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "target",
				Aliases: []string{"t"},
				Usage:   "Base URL of the service",
				Value:   "http://localhost:8000",
				Sources: cli.EnvVars("LOADGEN_TARGET"),
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "create, list or mixed",
				Value:   string(loadgen.ModeCreate),
			},
			&cli.FloatFlag{
				Name:    "rate",
				Aliases: []string{"r"},
				Usage:   "Requests per second across all workers; 0 is unthrottled",
				Value:   100,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Concurrent workers",
				Value:   10,
			},
			&cli.DurationFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "How long to run; 0 runs until --requests is reached",
				Value:   30 * time.Second,
			},
			&cli.IntFlag{
				Name:    "requests",
				Aliases: []string{"n"},
				Usage:   "Total request budget; 0 is unlimited",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request timeout",
				Value: 10 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every failed request",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("verbose") {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			cfg := loadgen.Config{
				BaseURL:  cmd.String("target"),
				Mode:     loadgen.Mode(cmd.String("mode")),
				Rate:     cmd.Float("rate"),
				Workers:  int(cmd.Int("workers")),
				Duration: cmd.Duration("duration"),
				Requests: int(cmd.Int("requests")),
				Timeout:  cmd.Duration("timeout"),
			}

			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.MaxIdleConnsPerHost = cfg.Workers

			runner, err := loadgen.NewRunner(cfg, &http.Client{Timeout: cfg.Timeout, Transport: transport}, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting load run",
				slog.String("target", cfg.BaseURL),
				slog.String("mode", string(cfg.Mode)),
				slog.Float64("rate", cfg.Rate),
				slog.Int("workers", cfg.Workers),
			)

			summary, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			_, err = summary.WriteTo(os.Stdout)

			return err
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Error("Load run failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
