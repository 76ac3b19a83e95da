// pkg/audio/sound_manager.go
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-howitzer/pkg/event"
	"github.com/opd-ai/go-howitzer/pkg/logging"
)

// DefaultVolume is the linear volume effects play at
const DefaultVolume = 0.8

// SoundManager plays effects for simulation events through one mixer
// feeding the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	subs        []*event.Subscription
	logger      *logging.Logger
}

// NewSoundManager creates a silent sound manager. Nothing plays until
// Initialize succeeds.
func NewSoundManager(logger *logging.Logger) *SoundManager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: DefaultVolume,
		logger: logger.WithComponent("audio"),
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return logging.WrapError(err, "speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetVolume sets the linear volume for effects played from now on
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = volume
}

// Play mixes in a new instance of soundType. It does nothing before
// Initialize.
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(soundType, sm.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.logger.Debug(context.Background(), "playing sound", "sound", soundType.String())
}

// Playing returns how many effects are still sounding
func (sm *SoundManager) Playing() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Subscribe plays the matching effect for every fire, landing and hit on bus
func (sm *SoundManager) Subscribe(bus *event.Bus) {
	on := func(soundType SoundType) event.Handler {
		return func(event.Event) { sm.Play(soundType) }
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.subs = append(sm.subs,
		bus.Subscribe(event.ProjectileFired, on(SoundFire)),
		bus.Subscribe(event.ProjectileLanded, on(SoundLand)),
		bus.Subscribe(event.TargetHit, on(SoundHit)),
	)
}

// Cleanup unsubscribes and silences everything
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	subs := sm.subs
	sm.subs = nil
	sm.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
