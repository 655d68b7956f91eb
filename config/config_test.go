package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if !cfg.InvertY || !cfg.InvertZ || !cfg.InvertYaw || cfg.InvertX {
		t.Errorf("unexpected default inversion flags: %+v", cfg)
	}
	if cfg.Move.MinHz != 15 || cfg.Move.MaxHz != 30 || cfg.Move.HoldThreshold != 0.40 {
		t.Errorf("unexpected move defaults: %+v", cfg.Move)
	}
	if cfg.Zoom.MinHz != 8 || cfg.Zoom.HoldThreshold != 0.5 {
		t.Errorf("unexpected zoom defaults: %+v", cfg.Zoom)
	}
	if !cfg.Mode.SyncWithCapsLockLED || cfg.Mode.StartInCharacterMode {
		t.Errorf("unexpected mode defaults: %+v", cfg.Mode)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
invert_x: true
swap_y_z: true
move:
  press_ms: 25
  min_hz: 10
  max_hz: 20
  deadzone: 0.05
  hold_threshold: 0.8
  ema_alpha: 0.5
zoom:
  press_ms: 10
  min_hz: 8
  max_hz: 18
  deadzone: 0.001
  hold_threshold: 0.5
  ema_alpha: 0.3
axes:
  rotate_left: Home
buttons:
  8: Shift + Space
device:
  path: /dev/hidraw3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.InvertX || !cfg.SwapYZ {
		t.Errorf("flag overrides not applied: %+v", cfg)
	}
	if cfg.Move.PressMs != 25 || cfg.Move.HoldThreshold != 0.8 {
		t.Errorf("move overrides not applied: %+v", cfg.Move)
	}
	if cfg.Axes["rotate_left"] != "Home" {
		t.Errorf("axis override not applied: %v", cfg.Axes)
	}
	if cfg.Buttons[8] != "Shift + Space" {
		t.Errorf("button override not applied: %v", cfg.Buttons)
	}
	if cfg.Device.Path != "/dev/hidraw3" {
		t.Errorf("device path not applied: %v", cfg.Device)
	}
}

func TestLoad_RejectsBadTuning(t *testing.T) {
	cases := []string{
		"move:\n  press_ms: 20\n  min_hz: 0\n  max_hz: 30\n  deadzone: 0.001\n  hold_threshold: 0.4\n  ema_alpha: 0.3\n",
		"move:\n  press_ms: 20\n  min_hz: 15\n  max_hz: 30\n  deadzone: 0.5\n  hold_threshold: 0.4\n  ema_alpha: 0.3\n",
		"move:\n  press_ms: 20\n  min_hz: 15\n  max_hz: 30\n  deadzone: 0.001\n  hold_threshold: 0.4\n  ema_alpha: 2\n",
	}
	for i, c := range cases {
		if _, err := Load(writeConfig(t, c)); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "move: [")); err == nil {
		t.Errorf("expected parse error")
	}
}
