package render

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-howitzer/pkg/input"
)

// KeyboardInput turns tcell key events into per-tick control snapshots.
// Terminals report presses but not releases, so every press counts for
// exactly one tick: Take returns the keys seen since the last call.
type KeyboardInput struct {
	mu      sync.Mutex
	pending input.Keys
	quit    bool
}

// NewKeyboardInput creates an idle KeyboardInput
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Listen feeds events from screen until ctx is done or the screen is
// finalized. Run it on its own goroutine.
func (k *KeyboardInput) Listen(ctx context.Context, screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		k.HandleEvent(ev)
		if ctx.Err() != nil {
			return
		}
	}
}

// HandleEvent records a key event. Other events are ignored.
func (k *KeyboardInput) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	k.HandleKey(key.Key(), key.Rune())
}

// HandleKey records one key press. Arrows and the vi keys hjkl aim, space
// fires, and Esc, Ctrl-C or q quit.
func (k *KeyboardInput) HandleKey(key tcell.Key, r rune) {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch key {
	case tcell.KeyLeft:
		k.pending.Left = true
	case tcell.KeyRight:
		k.pending.Right = true
	case tcell.KeyUp:
		k.pending.Up = true
	case tcell.KeyDown:
		k.pending.Down = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		switch r {
		case 'h':
			k.pending.Left = true
		case 'l':
			k.pending.Right = true
		case 'k':
			k.pending.Up = true
		case 'j':
			k.pending.Down = true
		case ' ':
			k.pending.Fire = true
		case 'q':
			k.quit = true
		}
	}
}

// Take returns and clears the keys pressed since the last call.
func (k *KeyboardInput) Take() input.Keys {
	k.mu.Lock()
	defer k.mu.Unlock()

	keys := k.pending
	k.pending = input.Keys{}
	return keys
}

// Quit reports whether a quit key has been pressed
func (k *KeyboardInput) Quit() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.quit
}
