// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for every object placed on the board
type Entity interface {
	GetID() ID
	Position() physics.Vector2D
	Render(r Renderer)
}

var lastID atomic.Uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(lastID.Add(1))
}
