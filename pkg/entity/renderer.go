package entity

import "github.com/opd-ai/go-howitzer/pkg/physics"

// Renderer draws entities. Positions are in meters; implementations convert
// to their own screen space.
type Renderer interface {
	RenderGround(ground *Ground)
	RenderHowitzer(howitzer *Howitzer)
	// RenderProjectile draws one point of a projectile trail. Age is 0 for
	// the newest point and grows toward the oldest.
	RenderProjectile(position physics.Vector2D, age int)
	RenderStatus(lines []string)
	Clear()
	Present()
}
