// Package main is the islandbake command: it bakes one island terrain from
// the configured parameters and writes the mesh (and optionally the
// collision soup) as Wavefront OBJ.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/islandgen/internal/config"
	"github.com/Faultbox/islandgen/internal/export"
	"github.com/Faultbox/islandgen/internal/logger"
	"github.com/Faultbox/islandgen/pkg/island"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Fatal("failed to write config", zap.String("path", path), zap.Error(err))
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	islandCfg := cfg.Island
	islandCfg.Materials = cfg.Materials.Handles()

	start := time.Now()
	mesh, col, err := island.Generate(islandCfg)
	if err != nil {
		logger.Error("bake failed", zap.Error(err))
		os.Exit(1)
	}

	size := mesh.Bounds.Size()
	logger.Info("island baked",
		zap.Int64("seed", mesh.Seed),
		zap.Int("surfaces", len(mesh.Surfaces)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("width", size.X),
		zap.Float32("height", size.Y),
		zap.Duration("took", time.Since(start)))
	for _, s := range mesh.Surfaces {
		logger.Sugar.Debugf("surface %s: %d triangles", s.Band, s.TriangleCount())
	}

	if err := export.MeshToFile(cfg.Output.MeshPath, mesh); err != nil {
		logger.Error("failed to write mesh", zap.String("path", cfg.Output.MeshPath), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("mesh written", zap.String("path", cfg.Output.MeshPath))

	if cfg.Output.CollisionPath != "" {
		if err := export.CollisionToFile(cfg.Output.CollisionPath, col); err != nil {
			logger.Error("failed to write collision", zap.String("path", cfg.Output.CollisionPath), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("collision written",
			zap.String("path", cfg.Output.CollisionPath),
			zap.Int("triangles", col.TriangleCount()))
	}
}
