package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/preceptress/neurocompute/internal/config"
	"github.com/preceptress/neurocompute/internal/database"
	"github.com/preceptress/neurocompute/internal/logging"
	"github.com/preceptress/neurocompute/internal/report"
	"github.com/preceptress/neurocompute/internal/widget"
)

func main() { os.Exit(main1()) }

func main1() int {
	app := &cli.App{
		Name:  "forgectl",
		Usage: "query and watch the performance monitor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "http://localhost:9054",
				Usage: "monitor base URL",
			},
			&cli.StringFlag{
				Name:  "style",
				Value: "nanos",
				Usage: "cache display style: nanos or rate",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			level := "info"
			if ctx.Bool("debug") {
				level = "debug"
			}
			logging.Init(config.LoggingConfig{Level: level, Format: "console"})
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "cache",
				Usage:  "show the cache latency once",
				Action: runCache,
			},
			{
				Name:   "stack",
				Usage:  "show the end-to-end stack latency once",
				Action: runStack,
			},
			{
				Name:  "watch",
				Usage: "poll both metrics until interrupted",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "interval",
						Value: 5 * time.Second,
						Usage: "refresh interval",
					},
				},
				Action: runWatch,
			},
			{
				Name:  "report",
				Usage: "generate charts and a summary from probe history",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Value: "perfmon.db",
						Usage: "probe history database path",
					},
					&cli.StringFlag{
						Name:  "out",
						Value: "reports",
						Usage: "output directory",
					},
					&cli.IntFlag{
						Name:  "hours",
						Value: 24,
						Usage: "history window in hours",
					},
				},
				Action: runReport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("forgectl failed")
		return 1
	}
	return 0
}

func parseStyle(s string) (widget.Style, error) {
	switch s {
	case "nanos":
		return widget.StyleNanos, nil
	case "rate":
		return widget.StyleAutoRate, nil
	default:
		return 0, fmt.Errorf("unknown style %q (want nanos or rate)", s)
	}
}

func newCacheWidget(ctx *cli.Context) (*widget.CacheWidget, error) {
	style, err := parseStyle(ctx.String("style"))
	if err != nil {
		return nil, err
	}

	client := widget.NewClient(ctx.String("server"), nil)
	display := widget.NewTerminalSink(os.Stdout, "cache")
	distance := widget.NewTerminalSink(os.Stdout, "light travel")
	return widget.NewCacheWidget(client, style, display, widget.WithDistanceSink(distance))
}

func newStackWidget(ctx *cli.Context) (*widget.StackWidget, error) {
	client := widget.NewClient(ctx.String("server"), nil)
	display := widget.NewTerminalSink(os.Stdout, "stack")
	distance := widget.NewTerminalSink(os.Stdout, "light travel")
	return widget.NewStackWidget(client, display, widget.WithDistanceSink(distance))
}

func runCache(ctx *cli.Context) error {
	w, err := newCacheWidget(ctx)
	if err != nil {
		return err
	}
	w.Refresh(ctx.Context)
	return nil
}

func runStack(ctx *cli.Context) error {
	w, err := newStackWidget(ctx)
	if err != nil {
		return err
	}
	w.Refresh(ctx.Context)
	return nil
}

func runWatch(ctx *cli.Context) error {
	cacheW, err := newCacheWidget(ctx)
	if err != nil {
		return err
	}
	stackW, err := newStackWidget(ctx)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	ticker := time.NewTicker(ctx.Duration("interval"))
	defer ticker.Stop()

	// Immediate first refresh
	cacheW.Refresh(watchCtx)
	stackW.Refresh(watchCtx)

	for {
		select {
		case <-watchCtx.Done():
			return nil
		case <-ticker.C:
			cacheW.Refresh(watchCtx)
			stackW.Refresh(watchCtx)
		}
	}
}

func runReport(ctx *cli.Context) error {
	db, err := database.New(ctx.String("db"))
	if err != nil {
		return err
	}
	defer db.Close()

	dir, err := report.NewGenerator(db).GenerateReport(ctx.String("out"), ctx.Int("hours"))
	if err != nil {
		return err
	}

	fmt.Println(dir)
	return nil
}
