// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-howitzer/pkg/input"
)

// Button names registered with the engo input manager
const (
	buttonLeft      = "left"
	buttonRight     = "right"
	buttonUp        = "up"
	buttonDown      = "down"
	buttonFire      = "fire"
	buttonQuit      = "quit"
	buttonZoomIn    = "zoomIn"
	buttonZoomOut   = "zoomOut"
	buttonResetZoom = "resetZoom"
)

// buttonState is the part of the engo input manager the systems read
type buttonState interface {
	Down(name string) bool
	JustPressed(name string) bool
}

type engoButtons struct{}

func (engoButtons) Down(name string) bool        { return engo.Input.Button(name).Down() }
func (engoButtons) JustPressed(name string) bool { return engo.Input.Button(name).JustPressed() }

// RegisterBindings sets up the key bindings. Call it from Scene.Setup once
// engo is running.
func RegisterBindings() {
	engo.Input.RegisterButton(buttonLeft, engo.KeyArrowLeft, engo.KeyH)
	engo.Input.RegisterButton(buttonRight, engo.KeyArrowRight, engo.KeyL)
	engo.Input.RegisterButton(buttonUp, engo.KeyArrowUp, engo.KeyK)
	engo.Input.RegisterButton(buttonDown, engo.KeyArrowDown, engo.KeyJ)
	engo.Input.RegisterButton(buttonFire, engo.KeySpace)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape, engo.KeyQ)
	engo.Input.RegisterButton(buttonZoomIn, engo.KeyZ)
	engo.Input.RegisterButton(buttonZoomOut, engo.KeyX)
	engo.Input.RegisterButton(buttonResetZoom, engo.KeyR)
}

// InputSystem samples the keyboard every engine frame. Aim keys report
// whether they are held; a fire press is latched until the next Take so a
// press between simulation ticks is not lost.
type InputSystem struct {
	buttons buttonState
	keys    input.Keys
	fire    bool
	quit    bool
}

// NewInputSystem creates an input system reading the engo input manager
func NewInputSystem() *InputSystem {
	return newInputSystem(engoButtons{})
}

func newInputSystem(buttons buttonState) *InputSystem {
	return &InputSystem{buttons: buttons}
}

// Remove satisfies ecs.System
func (is *InputSystem) Remove(ecs.BasicEntity) {}

// Update samples the bound buttons
func (is *InputSystem) Update(float32) {
	is.keys = input.Keys{
		Left:  is.buttons.Down(buttonLeft),
		Right: is.buttons.Down(buttonRight),
		Up:    is.buttons.Down(buttonUp),
		Down:  is.buttons.Down(buttonDown),
	}
	if is.buttons.JustPressed(buttonFire) {
		is.fire = true
	}
	if is.buttons.JustPressed(buttonQuit) {
		is.quit = true
	}
}

// Take returns the held aim keys plus any latched fire press, and clears
// the latch.
func (is *InputSystem) Take() input.Keys {
	keys := is.keys
	keys.Fire = is.fire
	is.fire = false
	return keys
}

// Quit reports whether a quit key has been pressed
func (is *InputSystem) Quit() bool {
	return is.quit
}
