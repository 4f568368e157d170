// Package audio plays the short UI sound cues of the menus: moving between
// elements, selecting one and backing out of a widget.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/config"
	"github.com/Faultbox/midgard-nav/internal/nav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue is a UI sound.
type Cue int

const (
	CueNavigate Cue = iota
	CueSelect
	CueBack
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueNavigate:
		return "navigate"
	case CueSelect:
		return "select"
	case CueBack:
		return "back"
	default:
		return "unknown"
	}
}

// Player decodes cue sounds up front and mixes them on demand.
type Player struct {
	mu  sync.RWMutex
	log *zap.Logger

	// State
	initialized bool
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer

	volume float64 // 0.0 to 1.0
	muted  bool

	cues  [cueCount]*beep.Buffer
	paths [cueCount]string
}

// New creates a player from the audio settings. Sounds are read by Load.
func New(cfg config.AudioConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		log:        log,
		sampleRate: DefaultSampleRate,
		mixer:      &beep.Mixer{},
		volume:     clamp(cfg.SFXVolume, 0, 1),
		muted:      cfg.Muted,
		paths: [cueCount]string{
			CueNavigate: cfg.NavigateSound,
			CueSelect:   cfg.SelectSound,
			CueBack:     cfg.BackSound,
		},
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	// Cues play through one mixer for concurrent playback
	speaker.Play(p.mixer)

	p.initialized = true
	p.log.Info("audio initialized", zap.Int("sample_rate", int(p.sampleRate)))
	return nil
}

// Close shuts down playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (p *Player) IsInitialized() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.initialized
}

// Load reads every configured cue file. Cues without a path stay silent.
func (p *Player) Load() error {
	for c := Cue(0); c < cueCount; c++ {
		path := p.paths[c]
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s sound: %w", c, err)
		}
		if err := p.LoadWAV(c, data); err != nil {
			return fmt.Errorf("load %s sound %q: %w", c, path, err)
		}
		p.log.Debug("cue loaded", zap.Stringer("cue", c), zap.String("path", path))
	}
	return nil
}

// LoadWAV decodes WAV data into the cue's buffer, resampling to the
// playback rate.
func (p *Player) LoadWAV(c Cue, data []byte) error {
	if c < 0 || c >= cueCount {
		return fmt.Errorf("unknown cue %d", c)
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		src = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
		format.SampleRate = p.sampleRate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	p.mu.Lock()
	p.cues[c] = buf
	p.mu.Unlock()
	return nil
}

// Loaded reports whether the cue has a sound.
func (p *Player) Loaded(c Cue) bool {
	if c < 0 || c >= cueCount {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cues[c] != nil && p.cues[c].Len() > 0
}

// SetVolume sets the cue volume (0.0 to 1.0).
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = clamp(vol, 0, 1)
}

// Volume returns the cue volume.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.volume
}

// SetMuted silences or restores every cue.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether cues are silenced.
func (p *Player) Muted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.muted
}

// Play starts the cue. It reports whether anything was queued.
func (p *Player) Play(c Cue) bool {
	if c < 0 || c >= cueCount {
		return false
	}
	p.mu.RLock()
	buf := p.cues[c]
	vol := p.volume
	ok := p.initialized && !p.muted && vol > 0 && buf != nil
	p.mu.RUnlock()

	if !ok {
		return false
	}

	s := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   volumeToGain(vol),
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// PlayBack plays the back cue.
func (p *Player) PlayBack() bool {
	return p.Play(CueBack)
}

// Action returns an element action factory playing the cue.
func (p *Player) Action(c Cue) nav.ActionFactory {
	return func() nav.ElementAction {
		return nav.ActionFunc(func(*nav.Element) { p.Play(c) })
	}
}

// Bind gives an element the navigate cue on focus and the select cue on
// click.
func (p *Player) Bind(e *nav.Element) {
	if e == nil {
		return
	}
	e.BindAction(nav.TriggerNavigatedTo, p.Action(CueNavigate))
	e.BindAction(nav.TriggerClicked, p.Action(CueSelect))
}

// volumeToGain converts a 0-1 volume to the base 2 exponent used by
// effects.Volume: vol=1 -> 0, vol=0.5 -> -1, vol=0.25 -> -2.
func volumeToGain(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
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
