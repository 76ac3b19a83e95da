// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	ProjectileFired  Type = "projectile_fired"
	ProjectileLanded Type = "projectile_landed"
	TargetHit        Type = "target_hit"
	SimulationReset  Type = "simulation_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// caller's goroutine, in subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// ProjectileEvent describes a projectile leaving the barrel or coming down.
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	X, Y         float64 // meters
	Speed        float64 // m/s
	Time         float64 // simulation seconds
	HangTime     float64 // seconds in the air, zero on launch
}

// NewProjectileEvent creates a projectile event
func NewProjectileEvent(eventType Type, source interface{}, projectileID uint64, x, y, speed, time, hangTime float64) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ProjectileID: projectileID,
		X:            x,
		Y:            y,
		Speed:        speed,
		Time:         time,
		HangTime:     hangTime,
	}
}

// ResetEvent announces a fresh board after a hit or a restart
type ResetEvent struct {
	BaseEvent
	HowitzerX, HowitzerY float64
	TargetX, TargetY     float64
}

// NewResetEvent creates a simulation reset event
func NewResetEvent(source interface{}, howitzerX, howitzerY, targetX, targetY float64) *ResetEvent {
	return &ResetEvent{
		BaseEvent: BaseEvent{
			EventType: SimulationReset,
			Source:    source,
		},
		HowitzerX: howitzerX,
		HowitzerY: howitzerY,
		TargetX:   targetX,
		TargetY:   targetY,
	}
}
