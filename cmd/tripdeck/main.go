// Command tripdeck is the trip companion CLI/TUI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/config/file"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/storage/sqlite"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/tripfile"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/cli"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/services"
	"github.com/tripdeck-labs/tripdeck-cli/internal/logger"
	"github.com/tripdeck-labs/tripdeck-cli/internal/tripdata"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var kv driven.KVStore

	cli.SetBootstrap(func() error {
		configStore, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		cfg, err := configStore.Load()
		if err != nil {
			return fmt.Errorf("loading config %s: %w", configStore.Path(), err)
		}
		if cfg.Verbose {
			logger.SetVerbose(true)
		}

		// Flags override the config file.
		dataDir := cfg.DataDir
		if cli.DataDir() != "" {
			dataDir = cli.DataDir()
		}
		tripPath := cfg.TripFile
		if cli.TripFile() != "" {
			tripPath = cli.TripFile()
		}

		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("opening annotation store: %w", err)
		}
		kv = store

		var source driven.TripSource = tripdata.NewSource()
		if tripPath != "" {
			source = tripfile.NewSource(tripPath)
		}

		annotations := services.NewAnnotationStore(kv)
		planner, err := services.NewPlanner(source, annotations)
		if err != nil {
			return err
		}

		// Reload the catalog live while editing a trip file.
		if tripPath != "" {
			err := tripfile.Watch(context.Background(), tripPath, func() {
				err := planner.Reload(source)
				if err != nil {
					logger.Warn("trip file reload failed: %v", err)
				} else {
					logger.Info("trip file reloaded")
				}
				cli.NotifyTripReloaded(err)
			})
			if err != nil {
				logger.Warn("trip file watching unavailable: %v", err)
			}
		}

		cli.SetServices(cli.Services{
			Planner:     planner,
			Annotations: annotations,
			Tasks:       annotations,
			Diary:       annotations,
		})
		return nil
	})

	defer func() {
		if kv != nil {
			if err := kv.Close(); err != nil {
				logger.Warn("closing annotation store: %v", err)
			}
		}
	}()

	return cli.Execute()
}
