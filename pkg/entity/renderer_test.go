package entity

import (
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// MockRenderer records every call it receives
type MockRenderer struct {
	GroundCalls     []*Ground
	HowitzerCalls   []*Howitzer
	ProjectileCalls []MockProjectileCall
	StatusCalls     [][]string
	ClearCallCount  int
	PresentCount    int
}

// MockProjectileCall captures the parameters of a RenderProjectile call
type MockProjectileCall struct {
	Position physics.Vector2D
	Age      int
}

func (m *MockRenderer) RenderGround(ground *Ground) {
	m.GroundCalls = append(m.GroundCalls, ground)
}

func (m *MockRenderer) RenderHowitzer(howitzer *Howitzer) {
	m.HowitzerCalls = append(m.HowitzerCalls, howitzer)
}

func (m *MockRenderer) RenderProjectile(position physics.Vector2D, age int) {
	m.ProjectileCalls = append(m.ProjectileCalls, MockProjectileCall{Position: position, Age: age})
}

func (m *MockRenderer) RenderStatus(lines []string) {
	m.StatusCalls = append(m.StatusCalls, lines)
}

func (m *MockRenderer) Clear() {
	m.ClearCallCount++
}

func (m *MockRenderer) Present() {
	m.PresentCount++
}

var (
	_ Renderer = (*MockRenderer)(nil)
	_ Entity   = (*Projectile)(nil)
	_ Entity   = (*Howitzer)(nil)
	_ Entity   = (*Ground)(nil)
)
