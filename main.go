package main

import (
	"os"
	"runtime"
	"time"

	"github.com/samuelyuan/go-tabletop/config"
	"github.com/samuelyuan/go-tabletop/frame"
	"github.com/samuelyuan/go-tabletop/input"
	"github.com/samuelyuan/go-tabletop/logging"
	"github.com/samuelyuan/go-tabletop/mesh"
	"github.com/samuelyuan/go-tabletop/render"
	"github.com/samuelyuan/go-tabletop/scene"
	"go.uber.org/zap"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	logger := logging.Root()
	defer logger.Sync()

	cfg := config.MustDefault()

	windowHandler, err := NewWindowHandler(cfg.Window)
	if err != nil {
		logger.Error("Failed to create window", zap.Error(err))
		return 1
	}
	defer windowHandler.close()

	renderLogger := logging.Named("render")
	if err := render.InitContext(renderLogger); err != nil {
		logger.Error("Failed to initialize graphics context", zap.Error(&GraphicsContextInitError{Err: err}))
		return 1
	}

	sceneMesh := mesh.TabletopScene()
	plan, err := scene.PlanDraws(sceneMesh, cfg)
	if err != nil {
		logger.Error("Failed to plan draw calls", zap.Error(err))
		return 1
	}

	renderer, err := render.NewRenderer(sceneMesh, plan, renderLogger)
	if err != nil {
		logger.Error("Failed to build renderer", zap.Error(err))
		return 1
	}
	defer renderer.Release()
	renderer.LoadTextures(cfg.Textures)

	state := scene.NewState(cfg)
	inputLogger := logging.Named("input")
	controller := input.NewController(cfg.Camera, inputLogger)
	windowHandler.attach(state, controller)

	fps := frame.NewFps(time.Second, func(fps float32) {
		logger.Debug("Frame rate", zap.Float32("fps", fps))
	})

	logger.Info("Scene ready", zap.Int("width", cfg.Window.Width), zap.Int("height", cfg.Window.Height))
	for !windowHandler.shouldClose() && !state.CloseRequested {
		controller.ProcessKeys(state, windowHandler.inputHandler)
		renderer.DrawFrame(state.Uniforms())
		windowHandler.endFrame()
		fps.EndFrame()
	}

	logger.Info("Window closed")
	return 0
}
