package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/invertedmushroom/bg3bridge/config"
	"github.com/invertedmushroom/bg3bridge/keycode"
	"github.com/invertedmushroom/bg3bridge/sink"
	"github.com/invertedmushroom/bg3bridge/spacemouse"
)

// movementAxes are the directions whose mode follows the character/camera
// toggle. Rotation and pitch always hold; zoom always pulses.
var movementAxes = []string{AxisMoveLeft, AxisMoveRight, AxisMoveForward, AxisMoveBackward}

// Engine consumes decoded SpaceMouse events and drives the key sink.
type Engine struct {
	mu sync.Mutex

	cfg  *config.Config
	out  sink.Sink
	move *PulseKeyer
	zoom *PulseKeyer

	buttons     map[int]keycode.Chord
	prevButtons spacemouse.Buttons

	characterMode bool

	// capsLock and clock are swappable for tests.
	capsLock func() bool
	clock    func() time.Time
}

// New builds an engine from config. The sink is typically sink.New() or the
// dry-run LogSink.
func New(cfg *config.Config, out sink.Sink) (*Engine, error) {
	m, err := BuildMappings(cfg)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		out:      out,
		move:     NewPulseKeyer(out, TuningFromConfig(cfg.Move)),
		zoom:     NewPulseKeyer(out, TuningFromConfig(cfg.Zoom)),
		buttons:  m.Buttons,
		capsLock: sink.CapsLockOn,
		clock:    time.Now,
	}

	e.characterMode = cfg.Mode.StartInCharacterMode
	if cfg.Mode.SyncWithCapsLockLED {
		e.characterMode = e.capsLock()
	}

	moveMode := e.movementMode()
	for _, name := range movementAxes {
		e.move.Bind(name, m.Axes[name], moveMode)
	}
	// Rotation and pitch stay continuous for smooth camera motion.
	for _, name := range []string{AxisRotateLeft, AxisRotateRight, AxisPitchUp, AxisPitchDown} {
		e.move.Bind(name, m.Axes[name], Hold)
	}
	for _, name := range []string{AxisZoomIn, AxisZoomOut} {
		e.zoom.Bind(name, m.Axes[name], Pulse)
	}

	brLog.Info().
		Bool("characterMode", e.characterMode).
		Bool("capslockSync", cfg.Mode.SyncWithCapsLockLED).
		Msg("[Engine] ready")
	return e, nil
}

func (e *Engine) movementMode() KeyMode {
	if e.characterMode {
		return Hold
	}
	return Pulse
}

// Run processes events until the channel closes or ctx is cancelled, then
// releases every held key.
func (e *Engine) Run(ctx context.Context, events <-chan spacemouse.Event) error {
	defer e.ReleaseAll()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e.HandleEvent(ev)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// HandleEvent dispatches one decoded event.
func (e *Engine) HandleEvent(ev spacemouse.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	if ev.Motion != nil {
		e.handleMotion(ev.Motion, now)
	}
	if ev.Buttons != nil {
		e.handleButtons(*ev.Buttons)
	}
}

func (e *Engine) handleMotion(m *spacemouse.Motion, now time.Time) {
	e.syncMode()

	x := spacemouse.Normalize(m.X)
	y := spacemouse.Normalize(m.Y)
	z := spacemouse.Normalize(m.Z)
	pitch := spacemouse.Normalize(m.Pitch)
	yaw := spacemouse.Normalize(m.Yaw)

	if e.cfg.InvertX {
		x = -x
	}
	if e.cfg.InvertY {
		y = -y
	}
	if e.cfg.InvertZ {
		z = -z
	}
	if e.cfg.InvertYaw {
		yaw = -yaw
	}
	if e.cfg.SwapYZ {
		y, z = z, y
	}

	// Each axis drives one direction and idles its opposite.
	if x >= 0 {
		e.move.Update(AxisMoveRight, x, now)
		e.move.Update(AxisMoveLeft, 0, now)
	} else {
		e.move.Update(AxisMoveLeft, -x, now)
		e.move.Update(AxisMoveRight, 0, now)
	}

	if y <= 0 {
		e.move.Update(AxisMoveForward, -y, now)
		e.move.Update(AxisMoveBackward, 0, now)
	} else {
		e.move.Update(AxisMoveBackward, y, now)
		e.move.Update(AxisMoveForward, 0, now)
	}

	if z >= 0 {
		e.zoom.Update(AxisZoomIn, z, now)
		e.zoom.Update(AxisZoomOut, 0, now)
	} else {
		e.zoom.Update(AxisZoomOut, -z, now)
		e.zoom.Update(AxisZoomIn, 0, now)
	}

	if yaw >= 0 {
		e.move.Update(AxisRotateRight, yaw, now)
		e.move.Update(AxisRotateLeft, 0, now)
	} else {
		e.move.Update(AxisRotateLeft, -yaw, now)
		e.move.Update(AxisRotateRight, 0, now)
	}

	if pitch >= 0 {
		e.move.Update(AxisPitchUp, pitch, now)
		e.move.Update(AxisPitchDown, 0, now)
	} else {
		e.move.Update(AxisPitchDown, -pitch, now)
		e.move.Update(AxisPitchUp, 0, now)
	}
}

// handleButtons taps each mapped chord once per rising edge.
func (e *Engine) handleButtons(b spacemouse.Buttons) {
	for i, pressed := range b {
		if pressed && !e.prevButtons[i] {
			chord, ok := e.buttons[i]
			if !ok {
				continue
			}
			if err := e.out.Tap(chord); err != nil {
				brLog.Error().Err(err).Int("button", i).Str("chord", chord.String()).Msg("[Engine] button tap failed")
				continue
			}
			brLog.Debug().Int("button", i).Str("name", spacemouse.ButtonName(i)).Str("chord", chord.String()).Msg("[Engine] button tap")
		}
	}
	e.prevButtons = b
}

// syncMode follows the CapsLock LED between camera and character movement.
// Switching releases the movement keys so no direction stays stuck.
func (e *Engine) syncMode() {
	if !e.cfg.Mode.SyncWithCapsLockLED {
		return
	}
	mode := e.capsLock()
	if mode == e.characterMode {
		return
	}
	e.characterMode = mode
	for _, name := range movementAxes {
		e.move.SetMode(name, e.movementMode())
	}
	brLog.Info().Bool("characterMode", mode).Msg("[Engine] movement mode changed")
}

// ReleaseAll releases everything both keyers hold.
func (e *Engine) ReleaseAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.move.ReleaseAll()
	e.zoom.ReleaseAll()
	brLog.Debug().Msg("[Engine] released all keys")
}
