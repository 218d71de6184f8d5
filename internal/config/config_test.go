package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.Width != 120 {
		t.Errorf("expected width 120, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 60 {
		t.Errorf("expected height 60, got %d", cfg.Display.Height)
	}
	if cfg.Camera.FOVDeg != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOVDeg)
	}
	if !cfg.Render.BackfaceCull {
		t.Error("expected backface_cull to be true by default")
	}
	if cfg.Render.ForceSmooth {
		t.Error("expected force_smooth_normals to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  width: 200
  height: 80

camera:
  fov_deg: 75
  near: 0.05
  far: 500

render:
  backface_cull: false
  force_smooth_normals: true
  target_fps: 60

asset:
  model_dir: "assets/models/knight"

logging:
  level: "debug"
  log_file: "render.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.Width != 200 {
		t.Errorf("expected width 200, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 80 {
		t.Errorf("expected height 80, got %d", cfg.Display.Height)
	}
	if cfg.Camera.FOVDeg != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Camera.FOVDeg)
	}
	if cfg.Render.BackfaceCull {
		t.Error("expected backface_cull to be false")
	}
	if !cfg.Render.ForceSmooth {
		t.Error("expected force_smooth_normals to be true")
	}
	if cfg.Render.TargetFPS != 60 {
		t.Errorf("expected target_fps 60, got %d", cfg.Render.TargetFPS)
	}
	if cfg.Asset.ModelDir != "assets/models/knight" {
		t.Errorf("expected model_dir assets/models/knight, got %s", cfg.Asset.ModelDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "render.log" {
		t.Errorf("expected log file 'render.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
display:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("display:\n  width: 80\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "model flag",
			setup: func() { *flagModel = "assets/models/knight" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Asset.ModelDir != "assets/models/knight" {
					t.Errorf("expected model_dir assets/models/knight, got %s", cfg.Asset.ModelDir)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name: "no-cull flag",
			setup: func() { *flagNoCull = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.BackfaceCull {
					t.Error("expected backface_cull to be false with -no-cull")
				}
			},
			teardown: func() { *flagNoCull = false },
		},
		{
			name: "force-smooth flag",
			setup: func() { *flagSmooth = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Render.ForceSmooth {
					t.Error("expected force_smooth_normals to be true with -force-smooth")
				}
			},
			teardown: func() { *flagSmooth = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 240
				*flagHeight = 120
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Display.Width != 240 {
					t.Errorf("expected width 240, got %d", cfg.Display.Width)
				}
				if cfg.Display.Height != 120 {
					t.Errorf("expected height 120, got %d", cfg.Display.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  width: 160
  height: 90
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 320
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.Width != 320 {
		t.Errorf("expected width 320 from flag, got %d", cfg.Display.Width)
	}
	if cfg.Display.Height != 90 {
		t.Errorf("expected height 90 from file, got %d", cfg.Display.Height)
	}
}
