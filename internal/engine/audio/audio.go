// Package audio plays the launch sound effect and the looping engine sound.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Engine pitch at idle and full throttle, as a playback ratio.
const (
	minEngineRatio = 0.8
	maxEngineRatio = 1.4
)

// Manager mixes one-shot effects with a single looping engine sound.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate
	muted       bool

	// Engine loop
	engineStreamer beep.StreamSeekCloser
	engineCtrl     *beep.Ctrl
	engineVolume   *effects.Volume
	enginePitch    *beep.Resampler
	enginePlaying  bool
	throttle       float64

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	engineLevel  float64
	sfxLevel     float64

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// Settings are the initial volumes.
type Settings struct {
	Master float64
	SFX    float64
	Engine float64
	Muted  bool
}

// New creates a new audio manager.
func New(s Settings) *Manager {
	return &Manager{
		masterVolume: clamp(s.Master, 0, 1),
		engineLevel:  clamp(s.Engine, 0, 1),
		sfxLevel:     clamp(s.SFX, 0, 1),
		muted:        s.Muted,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopEngineInternal()
	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateEngine()
}

// SetEngineVolume sets the engine loop volume (0.0 to 1.0).
func (m *Manager) SetEngineVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engineLevel = clamp(vol, 0, 1)
	m.updateEngine()
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxLevel = clamp(vol, 0, 1)
}

// SetMuted silences all output without losing volume settings.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateEngine()
}

// Muted reports whether output is silenced.
func (m *Manager) Muted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetEngineVolume returns the engine loop volume.
func (m *Manager) GetEngineVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.engineLevel
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxLevel
}

// SetThrottle sets the engine load (0.0 idle to 1.0 full). Higher throttle
// plays the loop louder and at a higher pitch.
func (m *Manager) SetThrottle(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.throttle = clamp(t, 0, 1)
	m.updateEngine()
}

// engineGain is the linear engine gain for the current settings.
func (m *Manager) engineGain() float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.engineLevel * (0.4 + 0.6*m.throttle)
}

func engineRatio(throttle float64) float64 {
	return minEngineRatio + (maxEngineRatio-minEngineRatio)*throttle
}

func (m *Manager) updateEngine() {
	if m.engineVolume == nil {
		return
	}
	gain := m.engineGain()
	speaker.Lock()
	m.engineVolume.Silent = gain <= 0
	m.engineVolume.Volume = gainToVolume(gain)
	m.enginePitch.SetRatio(engineRatio(m.throttle))
	speaker.Unlock()
}

// gainToVolume converts a linear 0-1 gain to the base-2 exponent used by
// effects.Volume: 1 -> 0, 0.5 -> -1, 0.25 -> -2.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return -10
	}
	return math.Log2(gain)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// decode reads WAV data and resamples it to the output rate.
func (m *Manager) decode(data []byte) (beep.StreamSeekCloser, beep.Streamer, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("decode wav: %w", err)
	}
	if format.SampleRate != m.sampleRate {
		return streamer, beep.Resample(4, format.SampleRate, m.sampleRate, streamer), nil
	}
	return streamer, streamer, nil
}

// PlayEngine starts the engine loop from WAV data, replacing any current loop.
func (m *Manager) PlayEngine(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNotInitialized
	}

	m.stopEngineInternal()

	streamer, resampled, err := m.decode(data)
	if err != nil {
		return err
	}

	loop := &loopStreamer{streamer: streamer, resampled: resampled, loop: true}
	m.enginePitch = beep.ResampleRatio(4, engineRatio(m.throttle), loop)
	m.engineCtrl = &beep.Ctrl{Streamer: m.enginePitch, Paused: false}
	m.engineVolume = &effects.Volume{
		Streamer: m.engineCtrl,
		Base:     2,
	}
	m.engineStreamer = streamer
	m.enginePlaying = true
	m.updateEngine()

	speaker.Lock()
	m.sfxMixer.Add(m.engineVolume)
	speaker.Unlock()
	return nil
}

// StopEngine stops the engine loop.
func (m *Manager) StopEngine() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopEngineInternal()
}

func (m *Manager) stopEngineInternal() {
	if m.engineCtrl != nil {
		speaker.Lock()
		// A nil streamer drains out of the mixer on the next pull.
		m.engineCtrl.Streamer = nil
		speaker.Unlock()
	}
	m.enginePlaying = false
	if m.engineStreamer != nil {
		m.engineStreamer.Close()
		m.engineStreamer = nil
	}
	m.engineCtrl = nil
	m.engineVolume = nil
	m.enginePitch = nil
}

// IsEnginePlaying returns whether the engine loop is running.
func (m *Manager) IsEnginePlaying() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enginePlaying
}

// PlaySFX plays a sound effect from WAV data.
func (m *Manager) PlaySFX(data []byte) error {
	m.mu.RLock()
	initialized := m.initialized
	sfxVol := m.masterVolume * m.sfxLevel
	if m.muted {
		sfxVol = 0
	}
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	_, resampled, err := m.decode(data)
	if err != nil {
		return err
	}

	volStreamer := &effects.Volume{
		Streamer: resampled,
		Base:     2,
		Volume:   gainToVolume(sfxVol),
		Silent:   sfxVol <= 0,
	}

	speaker.Lock()
	m.sfxMixer.Add(volStreamer)
	speaker.Unlock()

	return nil
}

// loopStreamer wraps a streamer to make it loop.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
	loop      bool
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if l.loop {
				// Reset to beginning
				if err := l.streamer.Seek(0); err != nil {
					return filled, false
				}
				if l.streamer.Len() == 0 {
					return filled, false
				}
				continue
			}
			return filled, false
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
