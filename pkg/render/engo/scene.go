// pkg/render/engo/scene.go
package engo

import (
	"bytes"
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/opd-ai/go-howitzer/pkg/engine"
	"github.com/opd-ai/go-howitzer/pkg/logging"
)

const fontURL = "gomono.ttf"

var skyColor = color.RGBA{135, 206, 235, 255}

// Scene runs a simulator inside engo. It is also the ecs system that steps
// the simulation at the configured frame rate, independent of how fast
// engo draws.
type Scene struct {
	sim    *engine.Simulator
	logger *logging.Logger

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem

	interval float32 // seconds per simulation tick
	elapsed  float32
	exit     func()
}

// NewScene creates a scene driving sim
func NewScene(sim *engine.Simulator, logger *logging.Logger) *Scene {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := sim.Config
	return &Scene{
		sim:      sim,
		logger:   logger.WithComponent("engo_scene"),
		renderer: NewEngoRenderer(NewView(sim.Zoom(), cfg.Screen.Height), NewAssetManager()),
		camera:   NewCameraSystem(),
		input:    NewInputSystem(),
		hud:      NewHUDSystem(),
		interval: 1 / float32(max(cfg.Display.FrameRate, 1)),
		exit:     engo.Exit,
	}
}

// Type returns the scene type
func (scene *Scene) Type() string {
	return "HowitzerScene"
}

// Preload registers the HUD font
func (scene *Scene) Preload() {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(gomono.TTF)); err != nil {
		scene.logger.Error(context.Background(), "failed to load font", err)
	}
}

// Setup builds the world. Systems update in the order added: input is
// sampled before the simulation steps, and the HUD draws last.
func (scene *Scene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("engo scene needs an *ecs.World updater")
	}
	common.SetBackground(skyColor)
	RegisterBindings()

	rs := &common.RenderSystem{}
	world.AddSystem(rs)

	if err := scene.renderer.assets.LoadAssets(); err != nil {
		scene.logger.Error(context.Background(), "failed to load assets", err)
	}
	scene.renderer.Attach(rs)

	font := &common.Font{URL: fontURL, FG: color.Black, Size: 14}
	if err := font.CreatePreloaded(); err != nil {
		scene.logger.Error(context.Background(), "failed to create font", err)
		font = nil
	}
	scene.hud.Attach(rs, font)
	scene.hud.Subscribe(scene.sim.EventBus)

	world.AddSystem(scene.input)
	world.AddSystem(scene.camera)
	world.AddSystem(scene)
	world.AddSystem(scene.hud)

	scene.logger.Info(context.Background(), "scene ready")
}

// Remove satisfies ecs.System
func (scene *Scene) Remove(ecs.BasicEntity) {}

// Update steps the simulation and draws the frame
func (scene *Scene) Update(dt float32) {
	if scene.input.Quit() {
		scene.hud.Unsubscribe()
		scene.exit()
		return
	}
	scene.step(dt)
	scene.sim.Draw(scene.renderer)
	scene.hud.SetStatus(scene.renderer.Status())
}

// step runs as many simulation ticks as dt covers and returns how many ran
func (scene *Scene) step(dt float32) int {
	scene.elapsed += dt
	ticks := 0
	for scene.elapsed >= scene.interval {
		scene.elapsed -= scene.interval
		scene.sim.Tick(scene.input.Take())
		ticks++
	}
	return ticks
}

// Run opens a window sized to the board and runs sim until the window is
// closed or a quit key is pressed. It blocks.
func Run(sim *engine.Simulator, logger *logging.Logger) {
	engo.Run(engo.RunOptions{
		Title:  "Howitzer",
		Width:  sim.Config.Screen.Width,
		Height: sim.Config.Screen.Height,
	}, NewScene(sim, logger))
}
