// Package flight stores the time-ordered history of a projectile's
// kinematic states.
package flight

import (
	"iter"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// DefaultCapacity is the number of states a Path keeps by default.
const DefaultCapacity = 10

// Path is an ordered sequence of kinematic states, oldest first. When a
// capacity is set the oldest states are evicted once it is exceeded; a
// capacity of zero keeps every state.
type Path struct {
	states   []physics.KinematicState
	capacity int
}

// NewPath creates an empty path holding at most capacity states
// (0 means unbounded; negative values are treated as 0).
func NewPath(capacity int) *Path {
	if capacity < 0 {
		capacity = 0
	}
	return &Path{capacity: capacity}
}

// Capacity returns the configured cap, 0 when unbounded.
func (p *Path) Capacity() int {
	return p.capacity
}

// Len returns the number of stored states.
func (p *Path) Len() int {
	return len(p.states)
}

// Empty reports whether the path has no states.
func (p *Path) Empty() bool {
	return len(p.states) == 0
}

// Append stores s as the newest state, evicting the oldest ones if the
// path is over capacity.
func (p *Path) Append(s physics.KinematicState) {
	p.states = append(p.states, s)
	if p.capacity > 0 && len(p.states) > p.capacity {
		drop := len(p.states) - p.capacity
		// shift in place so the backing array does not grow without bound
		n := copy(p.states, p.states[drop:])
		clear(p.states[n:])
		p.states = p.states[:n]
	}
}

// First returns the oldest retained state.
func (p *Path) First() (physics.KinematicState, bool) {
	if len(p.states) == 0 {
		return physics.KinematicState{}, false
	}
	return p.states[0], true
}

// Last returns the newest state.
func (p *Path) Last() (physics.KinematicState, bool) {
	if len(p.states) == 0 {
		return physics.KinematicState{}, false
	}
	return p.states[len(p.states)-1], true
}

// At returns the i-th state, oldest first.
func (p *Path) At(i int) (physics.KinematicState, bool) {
	if i < 0 || i >= len(p.states) {
		return physics.KinematicState{}, false
	}
	return p.states[i], true
}

// Clear removes every state, keeping the capacity.
func (p *Path) Clear() {
	clear(p.states)
	p.states = p.states[:0]
}

// States returns a copy of the stored states, oldest first.
func (p *Path) States() []physics.KinematicState {
	out := make([]physics.KinematicState, len(p.states))
	copy(out, p.states)
	return out
}

// All yields every stored state, oldest first.
func (p *Path) All() iter.Seq2[int, physics.KinematicState] {
	return func(yield func(int, physics.KinematicState) bool) {
		for i, s := range p.states {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Positions yields the position of every stored state, oldest first.
func (p *Path) Positions() iter.Seq[physics.Vector2D] {
	return func(yield func(physics.Vector2D) bool) {
		for _, s := range p.states {
			if !yield(s.Position) {
				return
			}
		}
	}
}
