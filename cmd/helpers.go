package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dudaspaulo/gerador-de-walka/internal/assets"
	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
	"github.com/dudaspaulo/gerador-de-walka/internal/config"
	"github.com/dudaspaulo/gerador-de-walka/internal/db"
	"github.com/dudaspaulo/gerador-de-walka/internal/hotsite"
	"github.com/dudaspaulo/gerador-de-walka/internal/logging"
	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `walka init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the zap logger; --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	}
	return logging.New(logCfg)
}

// openStore opens the project database under the configured data dir.
func openStore(cfg *config.Config) (*db.DB, *project.Store, error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return database, project.NewStore(database), nil
}

// newGenerator builds the hotsite generator for the current year.
func newGenerator(cfg *config.Config) (*hotsite.Generator, error) {
	opts := hotsite.DefaultOptions(time.Now().Year())
	opts.HighlightTier = cfg.HighlightTier
	opts.MarkdownFAQ = cfg.FAQMarkdown
	return hotsite.NewGenerator(opts)
}

// openAssets indexes the images directory. An empty dir yields a nil source,
// so archives are written without images.
func openAssets(cfg *config.Config, dir string) (hotsite.AssetSource, error) {
	if dir == "" {
		dir = cfg.AssetsDir
	}
	if dir == "" {
		return nil, nil
	}
	idx, err := assets.OpenDir(assets.Config{
		RootDir: dir,
		Include: cfg.AssetPatterns,
		Exclude: cfg.AssetExcludes,
	})
	if err != nil {
		return nil, fmt.Errorf("indexing assets: %w", err)
	}
	return idx, nil
}

// recordActivity appends a CLI entry to the activity log. Failures only warn;
// the command itself already succeeded.
func recordActivity(ctx context.Context, database *db.DB, logger *zap.Logger, e audit.Entry) {
	e.ActorType = audit.ActorCLI
	if e.ActorID == "" {
		e.ActorID = os.Getenv("USER")
	}
	if err := audit.NewStore(database).Log(ctx, e); err != nil {
		logger.Warn("recording activity", zap.String("action", string(e.Action)), zap.Error(err))
	}
}
