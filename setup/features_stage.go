package setup

import (
	"context"

	"github.com/andytrench/next-express/config"
)

// featurePackages maps each feature toggle to the npm packages it installs.
var featurePackages = map[string][]string{
	"redux":  {"@reduxjs/toolkit", "react-redux"},
	"axios":  {"axios"},
	"router": {"react-router-dom"},
	"auth":   {"next-auth"},
	"prisma": {"prisma", "@prisma/client"},
	"forms":  {"react-hook-form", "zod", "@hookform/resolvers"},
	"query":  {"@tanstack/react-query"},
}

// featuresStage installs the optional feature packages into the freshly
// scaffolded project, one npm install per feature so a failure names the
// feature that caused it.
type featuresStage struct{}

func (s *featuresStage) Name() string { return "Installing additional features..." }

func (s *featuresStage) Skip(cfg *config.ProjectConfig) bool { return len(cfg.Features) == 0 }

func (s *featuresStage) Run(ctx context.Context, sc *SetupContext) error {
	// Iterate the canonical feature order, not the config's, so install
	// order is deterministic regardless of how the list was entered.
	for _, feature := range config.Features {
		if !sc.Config.HasFeature(feature) {
			continue
		}
		pkgs := featurePackages[feature]
		sc.Log("Installing " + feature)
		if err := sc.NPM.Install(ctx, sc.Config.ProjectPath(), "Installing "+feature, pkgs, false, sc.Sink()); err != nil {
			return err
		}
	}
	return nil
}
