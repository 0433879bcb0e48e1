package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSize        = flag.Int("size", 0, "Heightmap resolution per axis")
	flagSeed        = flag.Int64("seed", 0, "Noise seed (0 = random)")
	flagIslandScale = flag.Float64("island-scale", 0, "World-space island width")
	flagNoiseScale  = flag.Float64("noise-scale", 0, "Base noise wavelength")
	flagMaxHeight   = flag.Float64("max-height", -1, "Elevation ceiling")
	flagOut         = flag.String("out", "", "Mesh OBJ output path")
	flagCollision   = flag.String("collision", "", "Collision OBJ output path")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to a YAML file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSize > 0 {
		cfg.Island.Size = *flagSize
	}
	if *flagSeed != 0 {
		cfg.Island.Seed = *flagSeed
	}
	if *flagIslandScale > 0 {
		cfg.Island.IslandScale = float32(*flagIslandScale)
	}
	if *flagNoiseScale > 0 {
		cfg.Island.NoiseScale = float32(*flagNoiseScale)
	}
	if *flagMaxHeight >= 0 {
		cfg.Island.MaxHeight = float32(*flagMaxHeight)
	}
	if *flagOut != "" {
		cfg.Output.MeshPath = *flagOut
	}
	if *flagCollision != "" {
		cfg.Output.CollisionPath = *flagCollision
	}
}
