package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/full-fish/RubicksDungeon/internal/config"
	"github.com/full-fish/RubicksDungeon/internal/core"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik"
	"github.com/full-fish/RubicksDungeon/internal/games/rubik/stages"
	"github.com/full-fish/RubicksDungeon/internal/storage"
)

// loadOptions reads the config, the stage set and the difficulty flag.
func loadOptions() (rubik.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return rubik.Options{}, err
	}

	cfg, err := config.LoadRubik(flagConfig)
	if err != nil {
		return rubik.Options{}, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return rubik.Options{}, err
	}

	dir := flagStagesDir
	if dir == "" {
		dir = cfg.Stages.Dir
	}
	list, err := stages.Open(dir, logger).LoadAll()
	if err != nil {
		return rubik.Options{}, fmt.Errorf("loading stages: %w", err)
	}
	if len(list) == 0 {
		return rubik.Options{}, fmt.Errorf("no stages found in %q", dir)
	}
	for _, st := range list {
		if unknown := st.UnknownTiles(catalog); len(unknown) > 0 {
			logger.Warn("stage uses tiles missing from the catalog", "stage", st.ID, "ids", unknown)
		}
	}
	logger.Debug("stages loaded", "count", len(list), "dir", dir, "difficulty", preset)

	return rubik.Options{Config: cfg, Stages: list, Preset: preset}, nil
}

// mustLoadOptions is loadOptions for commands that cannot continue without it.
func mustLoadOptions() rubik.Options {
	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return opts
}

// stageIndex resolves a user query to a position in list.
func stageIndex(list []stages.Stage, query string) (int, error) {
	st, err := stages.Find(list, query)
	if err != nil {
		return 0, err
	}
	for i := range list {
		if list[i].ID == st.ID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("stage %s vanished from the list", st.ID)
}

// runtimeConfig builds the platform config from flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failure is reported and play goes on.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
