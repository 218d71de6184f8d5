// Package main is the demo driver: it loads a model folder, builds a
// scene, and streams frames to the terminal via the ANSI backend.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	hotasset "github.com/Faultbox/asciiray/internal/asset"
	"github.com/Faultbox/asciiray/internal/backend/ansi"
	"github.com/Faultbox/asciiray/internal/config"
	"github.com/Faultbox/asciiray/internal/imagedecode"
	"github.com/Faultbox/asciiray/internal/logger"
	"github.com/Faultbox/asciiray/pkg/asset"
	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/render"
	"github.com/Faultbox/asciiray/pkg/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== asciiray demo driver ===")

	if cfg.Asset.ModelDir == "" {
		logger.Error("no model folder given, pass -model=<dir>")
		os.Exit(1)
	}

	dec := imagedecode.New()
	loadOpts := asset.LoadOptions{ForceSmooth: cfg.Render.ForceSmooth}
	assetLog := logger.Named("asset")
	result, err := asset.LoadFolder(cfg.Asset.ModelDir, dec, loadOpts, assetLog)
	if err != nil {
		logger.Error("loading model folder failed", zap.String("dir", cfg.Asset.ModelDir), zap.Error(err))
		os.Exit(1)
	}

	watcher, err := hotasset.NewWatcher(cfg.Asset.ModelDir, dec, loadOpts, logger.Named("watch"))
	if err != nil {
		logger.Error("starting model folder watcher failed", zap.String("dir", cfg.Asset.ModelDir), zap.Error(err))
		os.Exit(1)
	}
	defer watcher.Close()
	watcher.Start()
	<-watcher.Results // discard the watcher's own initial load, already have result

	aspect := float32(cfg.Display.Width) / float32(cfg.Display.Height)
	cam := scene.NewCamera(cfg.Camera.FOVDeg, aspect, cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = mathf.Vec3{X: 0, Y: 0, Z: 3}

	display := scene.NewDisplay(cfg.Display.Width, cfg.Display.Height, cam)
	display.Background = mathf.Vec3{X: cfg.Render.BackgroundR, Y: cfg.Render.BackgroundG, Z: cfg.Render.BackgroundB}
	display.AddMesh(result.Mesh)
	display.AddLight(scene.NewLight(
		mathf.Vec3{X: 2, Y: 3, Z: 3},
		mathf.Vec3{X: 1, Y: 1, Z: 1},
		2.0, 20.0,
	))
	display.AddCallback(scene.Continuous, 0, scene.Rotate{Axis: mathf.Vec3{Y: 1}, AngleRad: 0.02})

	driver := render.NewDriver(render.Options{BackfaceCull: cfg.Render.BackfaceCull})
	backend := ansi.New(os.Stdout)

	fps := cfg.Render.TargetFPS
	if fps <= 0 {
		fps = 30
	}
	frameInterval := time.Second / time.Duration(fps)

	logger.Info("rendering", zap.Int("width", cfg.Display.Width), zap.Int("height", cfg.Display.Height), zap.Int("fps", fps))

	for display.Running {
		start := time.Now()

		select {
		case reloaded := <-watcher.Results:
			display.Meshes[0] = reloaded.Mesh
			logger.Info("model folder reloaded", zap.String("dir", cfg.Asset.ModelDir))
		case err := <-watcher.Errors:
			logger.Warn("model folder watch error", zap.Error(err))
		default:
		}

		if err := driver.Update(display, backend); err != nil {
			logger.Error("frame update failed", zap.Error(err))
			os.Exit(1)
		}
		if elapsed := time.Since(start); elapsed < frameInterval {
			time.Sleep(frameInterval - elapsed)
		}
	}
}
