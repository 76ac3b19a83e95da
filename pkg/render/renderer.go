// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-howitzer/pkg/entity"
	"github.com/opd-ai/go-howitzer/pkg/logging"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// NullRenderer is an entity.Renderer that only logs what it is asked to
// draw. Headless runs use it.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer logging at debug level to logger.
// A nil logger discards.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger.WithComponent("null_renderer")}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderGround implements entity.Renderer.
func (d *NullRenderer) RenderGround(ground *entity.Ground) {
	ctx := context.Background()
	if ground == nil {
		d.logger.Debug(ctx, "RenderGround called with nil ground")
		return
	}
	target := ground.Target()
	d.logger.Debug(ctx, "RenderGround called",
		"width_px", ground.Width(),
		"height_px", ground.Height(),
		"target_x", target.X,
		"target_y", target.Y,
	)
}

// RenderHowitzer implements entity.Renderer.
func (d *NullRenderer) RenderHowitzer(howitzer *entity.Howitzer) {
	ctx := context.Background()
	if howitzer == nil {
		d.logger.Debug(ctx, "RenderHowitzer called with nil howitzer")
		return
	}
	d.logger.Debug(ctx, "RenderHowitzer called",
		"x", howitzer.Position().X,
		"y", howitzer.Position().Y,
		"elevation_deg", howitzer.Elevation().DisplayDegrees(),
	)
}

// RenderProjectile implements entity.Renderer.
func (d *NullRenderer) RenderProjectile(position physics.Vector2D, age int) {
	d.logger.Debug(context.Background(), "RenderProjectile called",
		"x", position.X,
		"y", position.Y,
		"age", age,
	)
}

// RenderStatus implements entity.Renderer.
func (d *NullRenderer) RenderStatus(lines []string) {
	d.logger.Debug(context.Background(), "RenderStatus called", "lines", lines)
}
