// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-howitzer/pkg/entity"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

var (
	groundColor   = color.RGBA{34, 139, 34, 255}
	targetColor   = color.RGBA{220, 20, 60, 255}
	howitzerColor = color.RGBA{85, 107, 47, 255}
	shellColor    = color.RGBA{40, 40, 40, 255}
)

const (
	howitzerWidth  = 24
	howitzerHeight = 12
	barrelLength   = 20
	barrelWidth    = 3
	targetSize     = 16
	shellSize      = 6
	trailSize      = 3
)

// placement is one sprite's position for the current frame, in canvas
// coordinates.
type placement struct {
	kind     spriteKind
	pos      engo.Point // top left corner
	width    float32
	height   float32
	rotation float32 // degrees clockwise
	color    color.Color
}

type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer on top of the engo render system.
// Each frame is collected as a list of placements between Clear and
// Present; Present maps them onto a pool of sprites so entities are only
// created when a frame needs more than any frame before it.
type EngoRenderer struct {
	view   View
	assets *AssetManager

	frame  []placement
	status []string

	renderSystem *common.RenderSystem
	pool         []*sprite
}

// NewEngoRenderer creates a renderer for the given view
func NewEngoRenderer(view View, assets *AssetManager) *EngoRenderer {
	if assets == nil {
		assets = NewAssetManager()
	}
	return &EngoRenderer{view: view, assets: assets}
}

// Attach connects the renderer to a render system. Until then frames are
// collected but not drawn.
func (r *EngoRenderer) Attach(rs *common.RenderSystem) {
	r.renderSystem = rs
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	r.frame = r.frame[:0]
	r.status = nil
}

// RenderGround implements entity.Renderer. Each pixel column is a bar from
// the surface to the bottom of the board.
func (r *EngoRenderer) RenderGround(ground *entity.Ground) {
	zoom := ground.Zoom()
	for col, elevation := range ground.Columns() {
		top := r.view.WorldToScreen(physics.Vector2D{X: zoom.Meters(float64(col)), Y: elevation})
		r.frame = append(r.frame, placement{
			kind:   kindGround,
			pos:    top,
			width:  1,
			height: r.view.Pixels(elevation),
			color:  groundColor,
		})
	}

	target := r.view.WorldToScreen(ground.Target())
	r.frame = append(r.frame, placement{
		kind:   kindTarget,
		pos:    engo.Point{X: target.X - targetSize/2, Y: target.Y - targetSize},
		width:  targetSize,
		height: targetSize,
		color:  targetColor,
	})
}

// RenderHowitzer implements entity.Renderer. The barrel is a bar pivoting on
// the top of the body; a bar hangs down unrotated, so it is turned half a
// circle past the elevation.
func (r *EngoRenderer) RenderHowitzer(howitzer *entity.Howitzer) {
	base := r.view.WorldToScreen(howitzer.Position())
	pivot := engo.Point{X: base.X, Y: base.Y - howitzerHeight}

	r.frame = append(r.frame,
		placement{
			kind:     kindBarrel,
			pos:      pivot,
			width:    barrelWidth,
			height:   barrelLength,
			rotation: float32(howitzer.Elevation().Degrees()) + 180,
			color:    howitzerColor,
		},
		placement{
			kind:   kindHowitzer,
			pos:    engo.Point{X: base.X - howitzerWidth/2, Y: pivot.Y},
			width:  howitzerWidth,
			height: howitzerHeight,
			color:  howitzerColor,
		},
	)
}

// RenderProjectile implements entity.Renderer. Older trail points fade out.
func (r *EngoRenderer) RenderProjectile(position physics.Vector2D, age int) {
	center := r.view.WorldToScreen(position)
	if age == 0 {
		r.frame = append(r.frame, placement{
			kind:   kindShell,
			pos:    engo.Point{X: center.X - shellSize/2, Y: center.Y - shellSize/2},
			width:  shellSize,
			height: shellSize,
			color:  shellColor,
		})
		return
	}
	alpha := uint8(max(40, 220-age*20))
	r.frame = append(r.frame, placement{
		kind:   kindTrail,
		pos:    engo.Point{X: center.X - trailSize/2, Y: center.Y - trailSize/2},
		width:  trailSize,
		height: trailSize,
		color:  color.NRGBA{R: 60, G: 60, B: 60, A: alpha},
	})
}

// RenderStatus implements entity.Renderer. The lines are drawn by the HUD.
func (r *EngoRenderer) RenderStatus(lines []string) {
	r.status = append(r.status[:0], lines...)
}

// Status returns the readout from the last frame
func (r *EngoRenderer) Status() []string {
	return r.status
}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	if r.renderSystem == nil {
		return
	}
	for len(r.pool) < len(r.frame) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		r.pool = append(r.pool, s)
	}

	for i, s := range r.pool {
		if i >= len(r.frame) {
			s.Hidden = true
			continue
		}
		p := r.frame[i]
		s.Hidden = false
		s.Drawable = r.assets.Get(p.kind)
		s.Scale = engo.Point{X: 1, Y: 1}
		// textures draw at their native size; shapes take the space size
		if d := s.Drawable; d != nil && d.Width() > 0 && d.Height() > 0 {
			s.Scale = engo.Point{X: p.width / d.Width(), Y: p.height / d.Height()}
		}
		s.Color = p.color
		s.Position = p.pos
		s.Width = p.width
		s.Height = p.height
		s.Rotation = p.rotation
		s.SetZIndex(float32(p.kind))
	}
}
