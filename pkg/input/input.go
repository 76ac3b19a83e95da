// Package input describes the controls the simulator reads each tick.
package input

// Interface is a snapshot source for the five simulator controls.
type Interface interface {
	IsLeft() bool
	IsRight() bool
	IsUp() bool
	IsDown() bool
	IsFire() bool
}

// Keys is a plain Interface implementation. Front ends fill one per tick;
// tests and headless runs build them directly.
type Keys struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
}

func (k Keys) IsLeft() bool  { return k.Left }
func (k Keys) IsRight() bool { return k.Right }
func (k Keys) IsUp() bool    { return k.Up }
func (k Keys) IsDown() bool  { return k.Down }
func (k Keys) IsFire() bool  { return k.Fire }

// Any reports whether any control is active
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Up || k.Down || k.Fire
}

// Merge returns the union of two key snapshots
func (k Keys) Merge(other Keys) Keys {
	return Keys{
		Left:  k.Left || other.Left,
		Right: k.Right || other.Right,
		Up:    k.Up || other.Up,
		Down:  k.Down || other.Down,
		Fire:  k.Fire || other.Fire,
	}
}

// None is an Interface with nothing pressed
var None Interface = Keys{}
