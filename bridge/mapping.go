package bridge

import (
	"fmt"
	"sort"

	"github.com/invertedmushroom/bg3bridge/config"
	"github.com/invertedmushroom/bg3bridge/keycode"
	"github.com/invertedmushroom/bg3bridge/spacemouse"
)

// Axis direction names, as used in the config file.
const (
	AxisMoveLeft     = "move_left"
	AxisMoveRight    = "move_right"
	AxisMoveForward  = "move_forward"
	AxisMoveBackward = "move_backward"
	AxisZoomIn       = "zoom_in"
	AxisZoomOut      = "zoom_out"
	AxisRotateLeft   = "rotate_left"
	AxisRotateRight  = "rotate_right"
	AxisPitchUp      = "pitch_up"
	AxisPitchDown    = "pitch_down"
)

// defaultAxisChords are the reference-table bindings for each direction:
// WASD camera pan, Page Up/Down zoom, Delete/End rotate.
var defaultAxisChords = map[string]string{
	AxisMoveLeft:     "A",
	AxisMoveRight:    "D",
	AxisMoveForward:  "W",
	AxisMoveBackward: "S",
	AxisZoomIn:       "Page Up",
	AxisZoomOut:      "Page Down",
	AxisRotateLeft:   "Delete",
	AxisRotateRight:  "End",
	AxisPitchUp:      "Up",
	AxisPitchDown:    "Down",
}

// defaultButtonChords maps puck button indexes to in-game shortcuts.
var defaultButtonChords = map[int]string{
	0:  "B",             // MENU: Toggle Character Panels
	1:  "Left Alt",      // ALT: Show World Tooltips
	2:  "Left Ctrl",     // CTRL: Toggle Info
	3:  "Left Shift",    // SHIFT: Show Sneak Cones / Climbing Toggle
	4:  "Escape",        // ESC: Cancel Action / In-Game Menu
	5:  "O",             // 1: Toggle Tactical Camera
	6:  "Tab",           // 2: Toggle Combat Mode
	7:  "C",             // 3: Toggle Sneak
	8:  "Space",         // 4: End Turn
	9:  "Home",          // ROLL CLOCKWISE: Camera Center
	10: "M",             // TOP: Toggle Map
	11: "Caps Lock",     // ROTATION: movement mode toggle
	12: "I",             // FRONT: Toggle Inventory
	13: "L",             // REAR: Toggle Journal
	14: "Shift + Space", // FIT: Leave Turn-based Mode
}

// Mappings is the resolved axis and button binding set for one bridge run.
type Mappings struct {
	Axes    map[string]keycode.Chord
	Buttons map[int]keycode.Chord
}

// BuildMappings merges config overrides over the defaults and resolves every
// entry. Unknown axis names, out-of-range button indexes, and chords that
// cannot be injected are configuration errors.
func BuildMappings(cfg *config.Config) (*Mappings, error) {
	m := &Mappings{
		Axes:    make(map[string]keycode.Chord, len(defaultAxisChords)),
		Buttons: make(map[int]keycode.Chord, len(defaultButtonChords)),
	}

	for name := range cfg.Axes {
		if _, ok := defaultAxisChords[name]; !ok {
			return nil, fmt.Errorf("unknown axis name %q", name)
		}
	}
	for name, def := range defaultAxisChords {
		spec := def
		if ov, ok := cfg.Axes[name]; ok {
			spec = ov
		}
		chord, err := keycode.ParseChord(spec)
		if err != nil {
			return nil, fmt.Errorf("axis %s: %w", name, err)
		}
		if !chord.Injectable() {
			return nil, fmt.Errorf("axis %s: chord %q cannot be injected", name, chord)
		}
		m.Axes[name] = chord
	}

	for idx := range cfg.Buttons {
		if idx < 0 || idx >= spacemouse.NumButtons {
			return nil, fmt.Errorf("button index %d out of range", idx)
		}
	}
	for idx, def := range defaultButtonChords {
		spec := def
		if ov, ok := cfg.Buttons[idx]; ok {
			spec = ov
		}
		chord, err := keycode.ParseChord(spec)
		if err != nil {
			return nil, fmt.Errorf("button %d (%s): %w", idx, spacemouse.ButtonName(idx), err)
		}
		if !chord.Injectable() {
			return nil, fmt.Errorf("button %d (%s): chord %q cannot be injected", idx, spacemouse.ButtonName(idx), chord)
		}
		m.Buttons[idx] = chord
	}

	logMappings(m)
	return m, nil
}

func logMappings(m *Mappings) {
	names := make([]string, 0, len(m.Axes))
	for n := range m.Axes {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		brLog.Debug().Str("axis", n).Str("chord", m.Axes[n].String()).Msg("axis binding")
	}
	for idx := 0; idx < spacemouse.NumButtons; idx++ {
		if c, ok := m.Buttons[idx]; ok {
			brLog.Debug().Int("button", idx).Str("name", spacemouse.ButtonName(idx)).Str("chord", c.String()).Msg("button binding")
		}
	}
}
