package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wellmind/internal/breathe"
	"wellmind/internal/clock"
	"wellmind/internal/config"
	"wellmind/internal/engine"
	"wellmind/internal/storage"
	"wellmind/internal/ui"
)

// openStore picks the persistence backend named by cfg. The returned close
// function is always safe to call.
func openStore(cfg config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewMemoryStore(), noop, nil
	case config.StoreSQLite:
		db, err := storage.OpenSQLite(cfg.DBPath())
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	case config.StoreFile:
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
}

func run() (err error) {
	statsFlag := flag.Bool("stats", false, "Show companion and mood stats")
	breatheFlag := flag.Bool("breathe", false, "Start a breathing exercise")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Route log output to a file so it doesn't fight the TUI
	logFile, err := tea.LogToFile(cfg.LogPath(), "wellmind")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeStore())
	}()

	e, err := engine.New(store, clock.System{}, clock.NewRNG())
	if err != nil {
		return err
	}
	if cfg.CompanionName != "" && cfg.CompanionName != e.Snapshot().Companion.Name {
		if err := e.RenameCompanion(cfg.CompanionName); err != nil {
			return err
		}
	}

	if *statsFlag {
		return ui.DisplayStats(e.Snapshot())
	}

	if *breatheFlag {
		completed, err := breathe.Run(e.Snapshot().Companion)
		if err != nil {
			return err
		}
		if completed {
			n, err := e.CompleteBreathingExercise()
			if err != nil {
				return err
			}
			fmt.Printf("🌬️  Breathing exercise #%d complete. Nice work.\n", n)
		}
		return nil
	}

	p := tea.NewProgram(ui.NewModel(e, clock.System{}, cfg.DecayInterval))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
