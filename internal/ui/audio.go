package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundPromote
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager. Only one may exist per process.
func NewAudioManager(enabled bool, volume float64) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
	}
	am.SetVolume(volume)
	for _, s := range []SoundType{SoundMove, SoundCapture, SoundCheck, SoundPromote, SoundInvalid, SoundGameEnd} {
		am.sounds[s] = synthesize(s)
	}
	return am
}

// synthesize returns 16-bit little-endian stereo PCM for a sound.
func synthesize(s SoundType) []byte {
	switch s {
	case SoundMove:
		return pcm(0.08, click(440, 0.3))
	case SoundCapture:
		return pcm(0.12, click(330, 0.5))
	case SoundCheck:
		return pcm(0.15, tone(880, 0.15, 0.4))
	case SoundPromote:
		up := pcm(0.1, tone(660, 0.1, 0.35))
		return append(up, pcm(0.14, tone(990, 0.14, 0.35))...)
	case SoundInvalid:
		return pcm(0.1, buzz(150, 0.1, 0.3))
	case SoundGameEnd:
		return pcm(0.4, chord(0.4, 0.5, 261.63, 329.63, 392.00))
	default:
		return nil
	}
}

// wave returns the sample value in [-1, 1] at time t seconds.
type wave func(t float64) float64

// pcm samples w for duration seconds.
func pcm(duration float64, w wave) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		v := w(float64(i) / sampleRate)
		v = math.Max(-1, math.Min(1, v))
		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a short percussive knock with exponential decay.
func click(freq, amplitude float64) wave {
	return func(t float64) float64 {
		n := t * sampleRate
		noise := (math.Sin(n*0.3) + math.Sin(n*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * math.Exp(-t*30) * amplitude
	}
}

// tone rises over the first tenth of duration and then decays linearly.
func tone(freq, duration, amplitude float64) wave {
	return func(t float64) float64 {
		p := t / duration
		env := 1.0 - (p-0.1)/0.9
		if p < 0.1 {
			env = p / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * env * amplitude
	}
}

// buzz is a low, harmonically rich tone with linear decay.
func buzz(freq, duration, amplitude float64) wave {
	return func(t float64) float64 {
		w := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return w * (1.0 - t/duration) * amplitude * 0.5
	}
}

// chord mixes freqs with a fade in and a fade out.
func chord(duration, amplitude float64, freqs ...float64) wave {
	return func(t float64) float64 {
		p := t / duration
		env := 1.0
		switch {
		case p < 0.1:
			env = p / 0.1
		case p > 0.7:
			env = (1.0 - p) / 0.3
		}
		sum := 0.0
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return sum / float64(len(freqs)) * env * amplitude
	}
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A player per play lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume sets the audio volume, clamped to [0, 1].
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}
