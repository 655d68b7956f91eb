package keycode

import (
	"fmt"
	"strings"
)

// Chord is an ordered combination of keys, modifiers first, e.g.
// "Shift + Space". A single key is a chord of length one.
type Chord []Key

// ParseChord parses a binding cell entry like "W", "Page Up" or
// "Shift + Space" into a Chord.
func ParseChord(s string) (Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty chord")
	}
	parts := strings.Split(s, "+")
	c := make(Chord, 0, len(parts))
	for _, p := range parts {
		k, err := Lookup(p)
		if err != nil {
			return nil, fmt.Errorf("chord %q: %w", s, err)
		}
		c = append(c, k)
	}
	return c, nil
}

func (c Chord) String() string {
	names := make([]string, len(c))
	for i, k := range c {
		names[i] = k.Name
	}
	return strings.Join(names, " + ")
}

// Injectable reports whether every key in the chord can be synthesized as
// keyboard input. Mouse buttons and wheel steps cannot.
func (c Chord) Injectable() bool {
	for _, k := range c {
		if k.Kind != KindKey {
			return false
		}
	}
	return len(c) > 0
}
