// Package main provides a tool to seed the database with synthetic dose history.
//
// This generates a deterministic demo diary for a single user, replaces the
// stored history with it, and prints the diary grid plus personal stats.
//
// Usage:
//
//	DATA_PATH=~/clarityrx/data go run ./cmd/seed
//	go run ./cmd/seed --seed 7 --events 45
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/clarityrx/clarity-server/internal/catalog"
	"github.com/clarityrx/clarity-server/internal/seed"
	"github.com/clarityrx/clarity-server/internal/store"
)

var (
	seedFlag   = flag.Uint64("seed", 42, "RNG seed for the synthetic history")
	eventsFlag = flag.Int("events", 30, "Number of diary entries to generate")
	daysFlag   = flag.Int("days", 60, "Number of days to spread entries over")
	dryRun     = flag.Bool("dry-run", false, "Print the diary without touching the database")
)

func main() {
	flag.Parse()

	entries := seed.Generate(catalog.Default(), seed.Options{
		Events: *eventsFlag,
		Days:   *daysFlag,
		Seed:   *seedFlag,
	})

	if !*dryRun {
		dataPath := os.Getenv("DATA_PATH")
		if dataPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Fatalf("Failed to resolve home directory: %v", err)
			}
			dataPath = filepath.Join(home, "clarityrx", "data")
		}
		dbPath := filepath.Join(dataPath, "db")

		fmt.Printf("Opening database at: %s\n", dbPath)

		s, err := store.New(dbPath, nil)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer s.Close()

		ctx := context.Background()

		// The demo history replaces whatever was there before.
		if err := s.DropAll(); err != nil {
			log.Fatalf("Failed to clear store: %v", err)
		}

		for i := range entries {
			if err := s.DoseLogs.Create(ctx, &entries[i]); err != nil {
				log.Fatalf("Failed to write entry %s: %v", entries[i].ID, err)
			}
		}

		fmt.Printf("Seeded %d diary entries\n", len(entries))
	}

	seed.RenderGrid(os.Stdout, entries, 20)
	seed.RenderStats(os.Stdout, entries)
}
