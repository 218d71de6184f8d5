// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Asset   AssetConfig   `yaml:"asset"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds the character-grid output dimensions.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig holds the initial camera projection.
type CameraConfig struct {
	FOVDeg float32 `yaml:"fov_deg"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// RenderConfig holds pipeline toggles.
type RenderConfig struct {
	BackfaceCull bool    `yaml:"backface_cull"`
	ForceSmooth  bool    `yaml:"force_smooth_normals"`
	BackgroundR  float32 `yaml:"background_r"`
	BackgroundG  float32 `yaml:"background_g"`
	BackgroundB  float32 `yaml:"background_b"`
	TargetFPS    int     `yaml:"target_fps"`
}

// AssetConfig holds the asset folder to load on startup.
type AssetConfig struct {
	ModelDir string `yaml:"model_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  120,
			Height: 60,
		},
		Camera: CameraConfig{
			FOVDeg: 60,
			Near:   0.1,
			Far:    100,
		},
		Render: RenderConfig{
			BackfaceCull: true,
			ForceSmooth:  false,
			TargetFPS:    30,
		},
		Asset: AssetConfig{
			ModelDir: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
