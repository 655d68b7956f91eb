// Package keycode maps the key names used by the Baldur's Gate 3 PC
// keybinding reference to Win32 virtual-key codes.
package keycode

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies what a resolved name refers to. Only keyboard keys can be
// synthesized by the injector; mouse buttons and wheel steps are valid table
// data but not injectable.
type Kind int

const (
	KindKey Kind = iota
	KindMouse
	KindWheel
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "Key"
	case KindMouse:
		return "Mouse"
	case KindWheel:
		return "Wheel"
	default:
		return "Unknown"
	}
}

// Key is a single resolved physical input.
type Key struct {
	Name string // canonical name, e.g. "Page Up"
	VK   uint16 // Win32 virtual-key code; 0 for wheel steps
	Kind Kind
}

// Win32 default codes
var keys = map[string]Key{
	// Modifiers
	"left shift": {Name: "Left Shift", VK: 0xA0, Kind: KindKey},
	"left ctrl":  {Name: "Left Ctrl", VK: 0xA2, Kind: KindKey},
	"left alt":   {Name: "Left Alt", VK: 0xA4, Kind: KindKey},
	"shift":      {Name: "Shift", VK: 0x10, Kind: KindKey},
	"ctrl":       {Name: "Ctrl", VK: 0x11, Kind: KindKey},
	"alt":        {Name: "Alt", VK: 0x12, Kind: KindKey},

	// Navigation and editing
	"escape":    {Name: "Escape", VK: 0x1B, Kind: KindKey},
	"space":     {Name: "Space", VK: 0x20, Kind: KindKey},
	"tab":       {Name: "Tab", VK: 0x09, Kind: KindKey},
	"enter":     {Name: "Enter", VK: 0x0D, Kind: KindKey},
	"backspace": {Name: "Backspace", VK: 0x08, Kind: KindKey},
	"caps lock": {Name: "Caps Lock", VK: 0x14, Kind: KindKey},
	"page up":   {Name: "Page Up", VK: 0x21, Kind: KindKey},
	"page down": {Name: "Page Down", VK: 0x22, Kind: KindKey},
	"end":       {Name: "End", VK: 0x23, Kind: KindKey},
	"home":      {Name: "Home", VK: 0x24, Kind: KindKey},
	"insert":    {Name: "Insert", VK: 0x2D, Kind: KindKey},
	"delete":    {Name: "Delete", VK: 0x2E, Kind: KindKey},
	"left":      {Name: "Left", VK: 0x25, Kind: KindKey},
	"up":        {Name: "Up", VK: 0x26, Kind: KindKey},
	"right":     {Name: "Right", VK: 0x27, Kind: KindKey},
	"down":      {Name: "Down", VK: 0x28, Kind: KindKey},

	// Mouse
	"left mouse button":   {Name: "Left Mouse Button", VK: 0x01, Kind: KindMouse},
	"right mouse button":  {Name: "Right Mouse Button", VK: 0x02, Kind: KindMouse},
	"middle mouse button": {Name: "Middle Mouse Button", VK: 0x04, Kind: KindMouse},
	"mouse 4":             {Name: "Mouse 4", VK: 0x05, Kind: KindMouse},
	"mouse 5":             {Name: "Mouse 5", VK: 0x06, Kind: KindMouse},
	"mouse wheel up":      {Name: "Mouse Wheel Up", Kind: KindWheel},
	"mouse wheel down":    {Name: "Mouse Wheel Down", Kind: KindWheel},

	// Punctuation (US layout)
	"comma":         {Name: "Comma", VK: 0xBC, Kind: KindKey},
	"period":        {Name: "Period", VK: 0xBE, Kind: KindKey},
	"semicolon":     {Name: "Semicolon", VK: 0xBA, Kind: KindKey},
	"apostrophe":    {Name: "Apostrophe", VK: 0xDE, Kind: KindKey},
	"slash":         {Name: "Slash", VK: 0xBF, Kind: KindKey},
	"backslash":     {Name: "Backslash", VK: 0xDC, Kind: KindKey},
	"minus":         {Name: "Minus", VK: 0xBD, Kind: KindKey},
	"equals":        {Name: "Equals", VK: 0xBB, Kind: KindKey},
	"grave":         {Name: "Grave", VK: 0xC0, Kind: KindKey},
	"left bracket":  {Name: "Left Bracket", VK: 0xDB, Kind: KindKey},
	"right bracket": {Name: "Right Bracket", VK: 0xDD, Kind: KindKey},
}

func init() {
	// A-Z and 0-9 map straight onto their ASCII codes.
	for c := byte('A'); c <= 'Z'; c++ {
		name := string(c)
		keys[strings.ToLower(name)] = Key{Name: name, VK: uint16(c), Kind: KindKey}
	}
	for c := byte('0'); c <= '9'; c++ {
		name := string(c)
		keys[name] = Key{Name: name, VK: uint16(c), Kind: KindKey}
	}
	// F1-F12
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("F%d", i)
		keys[strings.ToLower(name)] = Key{Name: name, VK: uint16(0x70 + i - 1), Kind: KindKey}
	}
	// Numpad 0-9
	for i := 0; i <= 9; i++ {
		name := fmt.Sprintf("Numpad %d", i)
		keys[strings.ToLower(name)] = Key{Name: name, VK: uint16(0x60 + i), Kind: KindKey}
	}
}

// Lookup resolves a key name from the reference table. Matching is
// case-insensitive and ignores surrounding whitespace.
func Lookup(name string) (Key, error) {
	k, ok := keys[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Key{}, fmt.Errorf("unknown key name %q", name)
	}
	return k, nil
}

// Known reports whether name resolves to any physical input.
func Known(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// All returns every known key, keyboard keys first, ordered by code.
func All() []Key {
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.VK != b.VK {
			return a.VK < b.VK
		}
		return a.Name < b.Name
	})
	return out
}
