// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-howitzer/pkg/event"
)

const (
	bannerSeconds = 3
	lineHeight    = 18
	hudMargin     = 10
)

// HUDSystem draws the readout in the top left corner, a shot tally, and a
// short-lived banner announcing the last impact.
type HUDSystem struct {
	status []string
	shots  int
	hits   int

	banner     string
	bannerLeft float32 // seconds

	subs []*event.Subscription

	renderSystem *common.RenderSystem
	font         *common.Font
	lines        []*sprite
	textColor    color.Color
}

// NewHUDSystem creates an empty HUD
func NewHUDSystem() *HUDSystem {
	return &HUDSystem{textColor: color.Black}
}

// Attach connects the HUD to a render system and font. Until then Update
// only keeps the text current.
func (hud *HUDSystem) Attach(rs *common.RenderSystem, font *common.Font) {
	hud.renderSystem = rs
	hud.font = font
}

// Subscribe listens for flight events on bus
func (hud *HUDSystem) Subscribe(bus *event.Bus) {
	hud.subs = append(hud.subs,
		bus.Subscribe(event.ProjectileFired, hud.handleEvent),
		bus.Subscribe(event.ProjectileLanded, hud.handleEvent),
		bus.Subscribe(event.TargetHit, hud.handleEvent),
	)
}

// Unsubscribe stops listening for events
func (hud *HUDSystem) Unsubscribe() {
	for _, sub := range hud.subs {
		sub.Cancel()
	}
	hud.subs = nil
}

func (hud *HUDSystem) handleEvent(e event.Event) {
	pe, ok := e.(*event.ProjectileEvent)
	if !ok {
		return
	}
	switch pe.GetType() {
	case event.ProjectileFired:
		hud.shots++
		hud.showBanner("")
	case event.ProjectileLanded:
		hud.showBanner(fmt.Sprintf("Splash at %.0f m after %.1f s", pe.X, pe.HangTime))
	case event.TargetHit:
		hud.hits++
		hud.showBanner(fmt.Sprintf("Target hit after %.1f s!", pe.HangTime))
	}
}

func (hud *HUDSystem) showBanner(msg string) {
	hud.banner = msg
	hud.bannerLeft = bannerSeconds
	if msg == "" {
		hud.bannerLeft = 0
	}
}

// SetStatus replaces the readout lines
func (hud *HUDSystem) SetStatus(lines []string) {
	hud.status = append(hud.status[:0], lines...)
}

// Lines returns everything the HUD shows, top to bottom
func (hud *HUDSystem) Lines() []string {
	lines := append([]string(nil), hud.status...)
	lines = append(lines, fmt.Sprintf("Shots: %d  Hits: %d", hud.shots, hud.hits))
	if hud.banner != "" {
		lines = append(lines, hud.banner)
	}
	return lines
}

// Remove satisfies ecs.System
func (hud *HUDSystem) Remove(ecs.BasicEntity) {}

// Update ages the banner and redraws the text
func (hud *HUDSystem) Update(dt float32) {
	if hud.bannerLeft > 0 {
		hud.bannerLeft -= dt
		if hud.bannerLeft <= 0 {
			hud.banner = ""
		}
	}
	if hud.renderSystem == nil || hud.font == nil {
		return
	}

	lines := hud.Lines()
	for len(hud.lines) < len(lines) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.SetShader(common.TextHUDShader)
		s.SetZIndex(100)
		hud.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		hud.lines = append(hud.lines, s)
	}
	for i, s := range hud.lines {
		if i >= len(lines) {
			s.Hidden = true
			continue
		}
		s.Hidden = false
		s.Drawable = common.Text{Font: hud.font, Text: lines[i]}
		s.Color = hud.textColor
		s.Position = engo.Point{X: hudMargin, Y: hudMargin + float32(i*lineHeight)}
	}
}
