// pkg/audio/effects.go
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every effect is generated at
const SampleRate = beep.SampleRate(44100)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundFire SoundType = iota
	SoundLand
	SoundHit
)

func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundLand:
		return "land"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite wave of the given shape. Noise ignores freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq*1000), uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream exponentially, reaching about 1% of full volume
// after duration.
type decay struct {
	streamer beep.Streamer
	position int
	rate     float64 // per sample
}

// NewDecay applies an exponential fade to s
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	samples := max(rate.N(duration), 1)
	return &decay{streamer: s, rate: math.Log(100) / float64(samples)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * float64(d.position))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s by a linear factor. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateFireSound is the muzzle blast: a burst of noise over a low thump
func CreateFireSound(volume float64) beep.Streamer {
	const length = 600 * time.Millisecond
	blast := NewDecay(NewOscillator(0, length, WaveNoise, SampleRate), length/3, SampleRate)
	thump := NewDecay(NewOscillator(55, length, WaveSine, SampleRate), length, SampleRate)
	return newVolume(beep.Mix(newVolume(blast, 0.6), newVolume(thump, 0.8)), volume)
}

// CreateLandSound is a dull crump for a round hitting the ground
func CreateLandSound(volume float64) beep.Streamer {
	const length = 400 * time.Millisecond
	crump := NewDecay(NewOscillator(90, length, WaveSquare, SampleRate), length/2, SampleRate)
	dirt := NewDecay(NewOscillator(0, length, WaveNoise, SampleRate), length/4, SampleRate)
	return newVolume(beep.Mix(newVolume(crump, 0.3), newVolume(dirt, 0.4)), volume)
}

// CreateHitSound is a rising two-note chime
func CreateHitSound(volume float64) beep.Streamer {
	note := func(freq float64, length time.Duration) beep.Streamer {
		tone, err := generators.SineTone(SampleRate, freq)
		if err != nil {
			return beep.Silence(SampleRate.N(length))
		}
		return NewDecay(beep.Take(SampleRate.N(length), tone), length, SampleRate)
	}
	chime := beep.Seq(note(659.25, 120*time.Millisecond), note(987.77, 300*time.Millisecond))
	return newVolume(chime, volume*0.5)
}

// GetSoundEffect returns a fresh streamer for soundType, or nil if unknown
func GetSoundEffect(soundType SoundType, volume float64) beep.Streamer {
	switch soundType {
	case SoundFire:
		return CreateFireSound(volume)
	case SoundLand:
		return CreateLandSound(volume)
	case SoundHit:
		return CreateHitSound(volume)
	default:
		return nil
	}
}
