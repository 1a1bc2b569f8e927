package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/subway-planner"
	"github.com/theoremus-urban-solutions/subway-planner/mbta"
	"github.com/theoremus-urban-solutions/subway-planner/snapshot"
)

func main() {
	cmd := flag.String("cmd", "trip", "trip|list-lines|list-stops")
	start := flag.String("start", "", `starting stop name (e.g. "Park Street")`)
	end := flag.String("end", "", `destination stop name (e.g. "South Station")`)
	refresh := flag.Bool("refresh", false, "bypass the local snapshot cache and refetch")
	flag.Parse()

	lib.InitLogging()
	if err := run(*cmd, *start, *end, *refresh); err != nil {
		log.Printf("Error occurred: %v", err)
		os.Exit(1)
	}
}

func run(cmd, start, end string, refresh bool) error {
	// .env is for local development; absence is fine
	_ = godotenv.Load()
	if err := lib.LoadAppConfig(); err != nil {
		return err
	}

	ctx := context.Background()
	ds, err := loadDataset(ctx, refresh)
	if err != nil {
		return err
	}
	catalog, err := lib.NewCatalogFromDataset(ds)
	if err != nil {
		return err
	}
	planner := lib.NewPlanner(catalog)

	switch cmd {
	case "trip":
		if start == "" || end == "" {
			return fmt.Errorf("trip requires -start and -end")
		}
		reportLines(planner)
		reportExtremesAndTransfers(planner)
		return reportRoute(planner, start, end)
	case "list-lines":
		reportLines(planner)
	case "list-stops":
		reportStops(planner)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// loadDataset serves the snapshot cache when it is fresh, otherwise fetches
// from the MBTA API and caches the result.
func loadDataset(ctx context.Context, refresh bool) (*lib.Dataset, error) {
	store, err := snapshot.Open(lib.Config.Cache.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	maxAge := time.Duration(lib.Config.Cache.MaxAgeMinutes) * time.Minute
	if !refresh {
		ds, ok, err := store.Load(ctx, maxAge)
		if err != nil {
			return nil, err
		}
		if ok {
			return ds, nil
		}
	}

	apiKey := os.Getenv("MBTA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("MBTA_API_KEY is not set")
	}
	client := mbta.NewClient(mbta.Config{
		APIKey:     apiKey,
		BaseURL:    lib.Config.MBTA.BaseURL,
		Timeout:    time.Duration(lib.Config.MBTA.TimeoutMS) * time.Millisecond,
		MaxRetries: lib.Config.MBTA.MaxRetries,
		Backoff:    time.Duration(lib.Config.MBTA.BackoffMS) * time.Millisecond,
	})
	ds, err := lib.FetchDataset(ctx, client)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, ds); err != nil {
		log.Printf("Warning: failed to cache snapshot: %v", err)
	}
	return ds, nil
}
