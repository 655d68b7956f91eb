package bridge

import (
	"testing"

	"github.com/invertedmushroom/bg3bridge/config"
	"github.com/invertedmushroom/bg3bridge/spacemouse"
)

func TestBuildMappings_Defaults(t *testing.T) {
	m, err := BuildMappings(config.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Axes) != 10 {
		t.Errorf("expected 10 axis bindings, got %d", len(m.Axes))
	}
	if got := m.Axes[AxisMoveForward].String(); got != "W" {
		t.Errorf("expected W for move_forward, got %q", got)
	}
	if got := m.Axes[AxisRotateLeft].String(); got != "Delete" {
		t.Errorf("expected Delete for rotate_left, got %q", got)
	}
	if len(m.Buttons) != spacemouse.NumButtons {
		t.Errorf("expected %d button bindings, got %d", spacemouse.NumButtons, len(m.Buttons))
	}
	if got := m.Buttons[14].String(); got != "Shift + Space" {
		t.Errorf("expected chord for FIT, got %q", got)
	}
}

func TestBuildMappings_Overrides(t *testing.T) {
	cfg := config.Defaults()
	cfg.Axes = map[string]string{AxisRotateLeft: "Home"}
	cfg.Buttons = map[int]string{8: "Enter"}

	m, err := BuildMappings(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Axes[AxisRotateLeft].String(); got != "Home" {
		t.Errorf("axis override not applied: %q", got)
	}
	if got := m.Buttons[8].String(); got != "Enter" {
		t.Errorf("button override not applied: %q", got)
	}
}

func TestBuildMappings_Errors(t *testing.T) {
	cfg := config.Defaults()
	cfg.Axes = map[string]string{"warp_speed": "W"}
	if _, err := BuildMappings(cfg); err == nil {
		t.Errorf("expected error for unknown axis name")
	}

	cfg = config.Defaults()
	cfg.Axes = map[string]string{AxisMoveLeft: "Blorp"}
	if _, err := BuildMappings(cfg); err == nil {
		t.Errorf("expected error for unknown key")
	}

	cfg = config.Defaults()
	cfg.Buttons = map[int]string{99: "W"}
	if _, err := BuildMappings(cfg); err == nil {
		t.Errorf("expected error for out-of-range button")
	}

	cfg = config.Defaults()
	cfg.Buttons = map[int]string{0: "Left Mouse Button"}
	if _, err := BuildMappings(cfg); err == nil {
		t.Errorf("expected error for non-injectable chord")
	}
}
