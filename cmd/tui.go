package cmd

import (
	"context"
	"fmt"

	"github.com/jayeshbali/readrabbit/internal/api"
	"github.com/jayeshbali/readrabbit/internal/config"
	"github.com/jayeshbali/readrabbit/internal/history"
	"github.com/jayeshbali/readrabbit/internal/saved"
	"github.com/jayeshbali/readrabbit/internal/tui"
	"github.com/jayeshbali/readrabbit/internal/update"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	if flagCount > 0 {
		cfg.DealCount = flagCount
	}
	if flagView != "" {
		if flagView != "deck" && flagView != "list" {
			return nil, fmt.Errorf("invalid --view value %q (use deck or list)", flagView)
		}
		cfg.DefaultView = flagView
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.Server(), cfg.TimeoutDuration())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := saved.Open(config.SavedPath())
	if err != nil {
		return fmt.Errorf("opening saved articles: %w", err)
	}

	// Reading history is best effort; the client works without it
	log, err := history.Open(config.HistoryPath())
	if err == nil {
		defer log.Close()
	} else {
		log = nil
	}

	var updateVersion string
	if res := update.Check(context.Background(), version); res != nil {
		updateVersion = res.LatestVersion
	}

	return tui.Run(tui.RunOpts{
		Cfg:           cfg,
		Client:        newClient(cfg),
		Saved:         store,
		History:       log,
		StartView:     cfg.GetDefaultView(),
		UpdateVersion: updateVersion,
	})
}
