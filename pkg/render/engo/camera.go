// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// View maps world meters onto the engo canvas. World Y grows upward from the
// bottom of the board; canvas Y grows downward from the top.
type View struct {
	zoom   physics.Zoom
	height float32 // board height in pixels
}

// NewView creates a view for a board boardHeight pixels tall
func NewView(zoom physics.Zoom, boardHeight int) View {
	return View{zoom: zoom, height: float32(boardHeight)}
}

// WorldToScreen converts a world position in meters to canvas coordinates
func (v View) WorldToScreen(pos physics.Vector2D) engo.Point {
	px := v.zoom.ToPixels(pos)
	return engo.Point{X: float32(px.X), Y: v.height - float32(px.Y)}
}

// ScreenToWorld converts canvas coordinates back to meters
func (v View) ScreenToWorld(p engo.Point) physics.Vector2D {
	return v.zoom.ToMeters(physics.Vector2D{X: float64(p.X), Y: float64(v.height - p.Y)})
}

// Pixels converts a length in meters to canvas pixels
func (v View) Pixels(meters float64) float32 {
	return float32(v.zoom.Pixels(meters))
}

const (
	zoomRate = 0.5 // zoom change per second while a zoom key is held
	minZoom  = 0.25
	maxZoom  = 4.0
)

// CameraSystem zooms the engo camera from the keyboard. The board always
// starts fully in view at zoom 1.
type CameraSystem struct {
	buttons  buttonState
	zoom     float32
	dispatch func(engo.Message)
}

// NewCameraSystem creates a camera system reading the engo input manager
func NewCameraSystem() *CameraSystem {
	return newCameraSystem(engoButtons{}, func(m engo.Message) { engo.Mailbox.Dispatch(m) })
}

func newCameraSystem(buttons buttonState, dispatch func(engo.Message)) *CameraSystem {
	return &CameraSystem{buttons: buttons, zoom: 1, dispatch: dispatch}
}

// Remove satisfies ecs.System
func (cs *CameraSystem) Remove(ecs.BasicEntity) {}

// Update applies held zoom keys and the reset key
func (cs *CameraSystem) Update(dt float32) {
	zoom := cs.zoom
	if cs.buttons.Down(buttonZoomIn) {
		zoom *= 1 - zoomRate*dt
	}
	if cs.buttons.Down(buttonZoomOut) {
		zoom *= 1 + zoomRate*dt
	}
	if cs.buttons.JustPressed(buttonResetZoom) {
		zoom = 1
	}
	cs.SetZoom(zoom)
}

// SetZoom clamps and applies a zoom level. Values below 1 zoom in.
func (cs *CameraSystem) SetZoom(zoom float32) {
	zoom = max(minZoom, min(maxZoom, zoom))
	if zoom == cs.zoom {
		return
	}
	cs.zoom = zoom
	cs.dispatch(common.CameraMessage{Axis: common.ZAxis, Value: zoom})
}

// Zoom returns the current zoom level
func (cs *CameraSystem) Zoom() float32 {
	return cs.zoom
}
