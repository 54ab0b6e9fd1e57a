package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/departure-display/app"
	"github.com/theoremus-urban-solutions/departure-display/board"
	"github.com/theoremus-urban-solutions/departure-display/config"
	"github.com/theoremus-urban-solutions/departure-display/display"
	"github.com/theoremus-urban-solutions/departure-display/monitor"
)

const fetchTimeout = 10 * time.Second

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cliApp := &cli.App{
		Name:  "departure-display",
		Usage: "Real-time transit departure display",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "display.yml", Usage: "path to the persisted configuration"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("debug") {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Logger.Level(level)
			return nil
		},
		Commands: []*cli.Command{
			runCommand(),
			fetchCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func loadSettings(c *cli.Context) config.Settings {
	store := config.NewStore(c.String("config"))
	settings, loaded, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Configuration unavailable, using defaults")
	} else if !loaded {
		log.Info().Str("path", c.String("config")).Msg("No persisted configuration, using defaults")
	}
	if stop := c.String("stop"); stop != "" {
		settings.StopID = stop
	}
	if u := c.String("api"); u != "" {
		settings.APIBaseURL = u
	}
	return settings
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the display loop",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "stop", Usage: "main stop id (overrides configuration)"},
			&cli.StringFlag{Name: "api", Usage: "monitor endpoint base URL"},
			&cli.IntFlag{Name: "width", Value: 128, Usage: "virtual display width in px"},
			&cli.IntFlag{Name: "height", Value: 64, Usage: "virtual display height in px"},
		},
		Action: func(c *cli.Context) error {
			settings := loadSettings(c)
			if settings.StopID == "" {
				return cli.Exit("no stop id configured; set one with --stop or in the configuration file", 1)
			}

			client := monitor.NewClient(settings.APIBaseURL, fetchTimeout)
			cache := monitor.NewFetchCache(client)
			// Hardware builds construct a display.TinyfontDisplay over
			// their panel driver instead.
			disp := display.NewVirtual(c.Int("width"), c.Int("height"), 6)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().Str("stopID", settings.StopID).Int("lines", settings.LineCount).Msg("Starting departure display")
			app.New(settings, cache, disp).Run(ctx)
			return nil
		},
	}
}

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch and print normalized departures once",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "stop", Usage: "stop id to query", Required: true},
			&cli.StringFlag{Name: "api", Usage: "monitor endpoint base URL"},
		},
		Action: func(c *cli.Context) error {
			client := monitor.NewClient(c.String("api"), fetchTimeout)
			raw, err := client.FetchStop(c.String("stop"))
			if err != nil {
				return err
			}
			groups := monitor.Parse(raw)
			if len(groups) == 0 {
				return cli.Exit("no departures in response", 1)
			}
			settings := config.Default()
			settings.StopID = c.String("stop")
			buckets := board.Assign(groups, nil, settings)
			for _, g := range buckets[0] {
				alert := ""
				if g.AlertText != "" {
					alert = "  ! " + g.AlertText
				}
				fmt.Printf("%-5s %-28s %v%s\n", g.RouteName, g.DirectionText, g.Countdowns, alert)
			}
			return nil
		},
	}
}
