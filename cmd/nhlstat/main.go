package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"nhl-nationality-service/internal/config"
	"nhl-nationality-service/internal/domain"
	"nhl-nationality-service/internal/gameday"
	"nhl-nationality-service/internal/logging"
	"nhl-nationality-service/internal/metrics"
	"nhl-nationality-service/internal/providers/statsapi"
	"nhl-nationality-service/internal/report"
	"nhl-nationality-service/internal/roster"
	"nhl-nationality-service/internal/snapshots"
	"nhl-nationality-service/internal/timeutil"
)

const appVersion = "dev"

type options struct {
	updateData        bool
	showNationalities bool
	showPlayers       bool
	showGames         bool
	nationality       string
	date              string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return 1
	}

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nhl-nationality-service",
		Version: appVersion,
	})

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fatal(stderr, fmt.Sprintf("metrics setup failed: %v", err))
	}
	defer func() {
		_ = shutdownMetrics(context.Background())
	}()
	if promHandler != nil {
		// Scrape endpoint for long full-league crawls; dies with the run.
		go func() {
			_ = http.ListenAndServe(":"+cfg.Metrics.Port, promHandler)
		}()
	}

	client := statsapi.NewClient(statsapi.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     logger,
		Recorder:   recorder,
	})
	store := snapshots.NewStore(cfg.SnapshotDir)
	builder := roster.NewBuilder(client, logger)

	index, err := loadOrBuildIndex(ctx, opts, store, builder)
	if err != nil {
		return fatal(stderr, err.Error())
	}

	if opts.showNationalities {
		report.RenderNationalities(stdout, index)
		return 0
	}

	if opts.showPlayers || opts.showGames {
		if opts.nationality == "" {
			return fatal(stderr, "Must specify a nationality")
		}
		if !index.HasNationality(opts.nationality) {
			return fatal(stderr, fmt.Sprintf("%s is not a nationality with NHL players", opts.nationality))
		}
		fmt.Fprintf(stdout, "Nationality is %s\n", opts.nationality)

		if opts.showPlayers {
			report.RenderPlayers(stdout, index, opts.nationality)
		}

		if opts.showGames {
			date := opts.date
			if date == "" {
				date = timeutil.Today()
			} else if _, err := timeutil.ParseDate(date); err != nil {
				return fatal(stderr, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
			}

			aggregator := gameday.NewAggregator(client, logger)
			day, err := aggregator.Report(ctx, index, opts.nationality, date)
			if err != nil {
				return fatal(stderr, err.Error())
			}
			report.RenderDay(stdout, day)
		}
	}

	return 0
}

// loadOrBuildIndex resolves the roster index for this invocation: the
// per-nationality snapshot when one exists for the requested
// nationality, the global snapshot otherwise, and a fresh crawl when
// --update-data was given or no snapshot is on disk yet.
func loadOrBuildIndex(ctx context.Context, opts options, store *snapshots.Store, builder *roster.Builder) (domain.RosterIndex, error) {
	if opts.updateData {
		index, err := builder.Build(ctx, opts.nationality)
		if err != nil {
			return domain.RosterIndex{}, err
		}
		if err := store.Save(index, opts.nationality); err != nil {
			return domain.RosterIndex{}, err
		}
		return index, nil
	}

	filter := ""
	if opts.nationality != "" && store.Exists(opts.nationality) {
		filter = opts.nationality
	}
	if store.Exists(filter) {
		return store.Load(filter)
	}

	// First run: crawl the whole league and cache it.
	index, err := builder.Build(ctx, "")
	if err != nil {
		return domain.RosterIndex{}, err
	}
	if err := store.Save(index, ""); err != nil {
		return domain.RosterIndex{}, err
	}
	return index, nil
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("nhlstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.updateData, "update-data", false, "refresh the roster index from the stats API")
	fs.BoolVar(&opts.showNationalities, "show-nationalities", false, "list the nationalities in the index")
	fs.BoolVar(&opts.showPlayers, "show-players", false, "list players of the given nationality")
	fs.BoolVar(&opts.showGames, "show-games", false, "show the game-day report for the given nationality")
	fs.StringVar(&opts.nationality, "nationality", "", "nationality code, e.g. CHE")
	fs.StringVar(&opts.date, "date", "", "game date as YYYY-MM-DD (default: today)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func fatal(stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "!!! Error: %s\n", msg)
	return 1
}
