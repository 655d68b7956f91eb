// Package bridge turns SpaceMouse motion into Baldur's Gate 3 key input:
// analog axis deflections become interpolated key pulses or holds, and puck
// buttons become single key taps.
package bridge

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/invertedmushroom/bg3bridge/config"
	"github.com/invertedmushroom/bg3bridge/keycode"
	"github.com/invertedmushroom/bg3bridge/sink"
)

var brLog zerolog.Logger = log.With().Str("module", "bridge").Logger()

// KeyMode selects how an axis direction drives its key.
type KeyMode int

const (
	// Pulse taps the key at a rate proportional to the deflection, holding
	// continuously above the hold threshold. Good for camera panning.
	Pulse KeyMode = iota
	// Hold keeps the key down for any deflection above the deadzone. Good
	// for WASD character movement and camera rotation.
	Hold
)

func (m KeyMode) String() string {
	if m == Hold {
		return "hold"
	}
	return "pulse"
}

// Tuning controls the analog-to-pulse conversion for one keyer.
type Tuning struct {
	Press         time.Duration
	MinHz         float64
	MaxHz         float64
	Deadzone      float64
	HoldThreshold float64
	EmaAlpha      float64
}

// TuningFromConfig converts the config representation.
func TuningFromConfig(t config.AxisTuning) Tuning {
	return Tuning{
		Press:         time.Duration(t.PressMs * float64(time.Millisecond)),
		MinHz:         t.MinHz,
		MaxHz:         t.MaxHz,
		Deadzone:      t.Deadzone,
		HoldThreshold: t.HoldThreshold,
		EmaAlpha:      t.EmaAlpha,
	}
}

type pulseState struct {
	chord     keycode.Chord
	mode      KeyMode
	pressed   bool
	held      bool
	lastPulse time.Time
	releaseAt time.Time
	filtered  float64
}

// PulseKeyer drives a set of named axis directions, each bound to one chord.
// Callers pass the current time to every Update, so the keyer itself never
// consults a clock.
type PulseKeyer struct {
	out    sink.Sink
	tuning Tuning
	states map[string]*pulseState
}

func NewPulseKeyer(out sink.Sink, tuning Tuning) *PulseKeyer {
	return &PulseKeyer{
		out:    out,
		tuning: tuning,
		states: make(map[string]*pulseState),
	}
}

// Bind registers an axis direction. Rebinding an existing name releases its
// key first.
func (p *PulseKeyer) Bind(name string, chord keycode.Chord, mode KeyMode) {
	if st, ok := p.states[name]; ok {
		p.ensureReleased(st)
	}
	p.states[name] = &pulseState{chord: chord, mode: mode}
}

// SetMode switches an axis direction between pulse and hold, releasing the
// key so the next Update starts clean.
func (p *PulseKeyer) SetMode(name string, mode KeyMode) {
	st, ok := p.states[name]
	if !ok || st.mode == mode {
		return
	}
	p.ensureReleased(st)
	st.mode = mode
}

// Pressed reports whether the named direction currently holds its key down.
func (p *PulseKeyer) Pressed(name string) bool {
	st, ok := p.states[name]
	return ok && (st.pressed || st.held)
}

// Update feeds one smoothed magnitude sample for the named direction.
// raw must be non-negative; the caller routes signs to opposing directions.
func (p *PulseKeyer) Update(name string, raw float64, now time.Time) {
	st, ok := p.states[name]
	if !ok {
		return
	}

	st.filtered = p.tuning.EmaAlpha*raw + (1-p.tuning.EmaAlpha)*st.filtered
	mag := math.Abs(st.filtered)

	if mag <= p.tuning.Deadzone {
		if st.held {
			p.ensureReleased(st)
		} else if st.pressed && !now.Before(st.releaseAt) {
			p.release(st)
		}
		return
	}

	if st.mode == Hold {
		if !st.held {
			p.press(st)
			st.held = true
		}
		return
	}

	// Pulse mode: hold through strong deflection, otherwise duty-cycle.
	if mag >= p.tuning.HoldThreshold {
		if !st.held {
			p.press(st)
			st.held = true
		}
		return
	}
	if st.held {
		p.release(st)
		st.held = false
	}

	// Map [deadzone, holdThreshold] onto [minHz, maxHz].
	span := math.Max(1e-6, p.tuning.HoldThreshold-p.tuning.Deadzone)
	unit := math.Min(1, math.Max(0, (mag-p.tuning.Deadzone)/span))
	freq := p.tuning.MinHz + unit*(p.tuning.MaxHz-p.tuning.MinHz)
	interval := time.Duration(float64(time.Second) / math.Max(1e-6, freq))

	if now.Sub(st.lastPulse) >= interval {
		p.press(st)
		st.releaseAt = now.Add(p.tuning.Press)
		st.lastPulse = now
	}
	if st.pressed && !now.Before(st.releaseAt) {
		p.release(st)
	}
}

// ReleaseAll releases every key the keyer holds. Called on shutdown and on
// mode switches so nothing stays stuck down in-game.
func (p *PulseKeyer) ReleaseAll() {
	for _, st := range p.states {
		p.ensureReleased(st)
	}
}

func (p *PulseKeyer) press(st *pulseState) {
	if st.pressed {
		return
	}
	if err := p.out.Down(st.chord); err != nil {
		brLog.Error().Err(err).Str("chord", st.chord.String()).Msg("key down failed")
		return
	}
	st.pressed = true
}

func (p *PulseKeyer) release(st *pulseState) {
	if !st.pressed {
		return
	}
	if err := p.out.Up(st.chord); err != nil {
		brLog.Error().Err(err).Str("chord", st.chord.String()).Msg("key up failed")
	}
	st.pressed = false
}

func (p *PulseKeyer) ensureReleased(st *pulseState) {
	if st.pressed || st.held {
		if err := p.out.Up(st.chord); err != nil {
			brLog.Error().Err(err).Str("chord", st.chord.String()).Msg("key up failed")
		}
	}
	st.pressed = false
	st.held = false
	st.releaseAt = time.Time{}
}
