package main

import (
	"log/slog"

	"gridinv/internal/config"
	"gridinv/internal/hud"
	"gridinv/internal/inventory"
	"gridinv/internal/item"
	"gridinv/internal/pkg/idgen"

	"github.com/xlab/closer"
)

// scene is everything both subcommands share
type scene struct {
	cfg  config.Config
	inv  *inventory.Inventory
	ctrl *hud.Controller
}

// loadScene reads config and catalog, fills the inventory in catalog
// order and builds the controller.
func loadScene(logger *slog.Logger) (*scene, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	catalog := item.DefaultCatalog()
	if catalogPath != "" {
		var err error
		if catalog, err = item.LoadCatalog(catalogPath); err != nil {
			return nil, err
		}
	}

	var gen idgen.Generator = idgen.NewUUID("item")
	if sequential {
		gen = idgen.NewSequential("")
	}

	inv := inventory.New(cfg.Inventory.MaxItems, inventory.WithLogger(logger))
	for _, it := range catalog.Spawn(gen, inv) {
		it.WithLogger(logger)
		if !inv.Insert(it) {
			logger.Warn("inventory full, item dropped", "id", it.ID(), "name", it.Name())
		}
	}
	config.SetFPSLimit(cfg.Window.FPSLimit)

	closer.Bind(func() {
		logger.Info("final inventory", "items", inv.Len(), "capacity", inv.Capacity())
	})

	ctrl := hud.FromConfig(cfg.Inventory, inv, hud.WithLogger(logger))
	return &scene{cfg: cfg, inv: inv, ctrl: ctrl}, nil
}
