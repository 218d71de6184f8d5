package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagModel  = flag.String("model", "", "Path to a model folder to load on startup")
	flagWidth  = flag.Int("width", 0, "Display width in cells")
	flagHeight = flag.Int("height", 0, "Display height in cells")
	flagNoCull = flag.Bool("no-cull", false, "Disable backface culling")
	flagSmooth = flag.Bool("force-smooth", false, "Force smooth-normal synthesis on every mesh")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Asset.ModelDir = *flagModel
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
	if *flagNoCull {
		cfg.Render.BackfaceCull = false
	}
	if *flagSmooth {
		cfg.Render.ForceSmooth = true
	}
}
