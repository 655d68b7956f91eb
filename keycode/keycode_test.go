package keycode

import "testing"

func TestLookup_Letters(t *testing.T) {
	k, err := Lookup("W")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.VK != 0x57 {
		t.Errorf("expected VK 0x57 for W, got 0x%02X", k.VK)
	}
	if k.Kind != KindKey {
		t.Errorf("expected KindKey, got %v", k.Kind)
	}

	// case-insensitive
	lower, err := Lookup("w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower.VK != k.VK {
		t.Errorf("lowercase lookup should match: 0x%02X vs 0x%02X", lower.VK, k.VK)
	}
}

func TestLookup_NamedKeys(t *testing.T) {
	cases := []struct {
		name string
		vk   uint16
	}{
		{"Page Up", 0x21},
		{"Page Down", 0x22},
		{"Delete", 0x2E},
		{"End", 0x23},
		{"Home", 0x24},
		{"F10", 0x79},
		{"Numpad 5", 0x65},
	}
	for _, c := range cases {
		k, err := Lookup(c.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", c.name, err)
		}
		if k.VK != c.vk {
			t.Errorf("Lookup(%q): expected 0x%02X, got 0x%02X", c.name, c.vk, k.VK)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("Hyper"); err == nil {
		t.Errorf("expected error for unknown key name")
	}
}

func TestLookup_Mouse(t *testing.T) {
	k, err := Lookup("Left Mouse Button")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.Kind != KindMouse || k.VK != 0x01 {
		t.Errorf("expected mouse kind VK 0x01, got %v 0x%02X", k.Kind, k.VK)
	}

	wheel, err := Lookup("Mouse Wheel Up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wheel.Kind != KindWheel {
		t.Errorf("expected wheel kind, got %v", wheel.Kind)
	}
}

func TestParseChord(t *testing.T) {
	c, err := ParseChord("Shift + Space")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(c))
	}
	if c[0].Name != "Shift" || c[1].Name != "Space" {
		t.Errorf("unexpected chord order: %v", c)
	}
	if c.String() != "Shift + Space" {
		t.Errorf("expected canonical string, got %q", c.String())
	}
	if !c.Injectable() {
		t.Errorf("keyboard chord should be injectable")
	}
}

func TestParseChord_Errors(t *testing.T) {
	if _, err := ParseChord(""); err == nil {
		t.Errorf("expected error for empty chord")
	}
	if _, err := ParseChord("Shift + Blorp"); err == nil {
		t.Errorf("expected error for unknown member")
	}
}

func TestChord_Injectable_Mouse(t *testing.T) {
	c, err := ParseChord("Shift + Left Mouse Button")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Injectable() {
		t.Errorf("mouse chord must not be injectable")
	}
}

func TestAll_ContainsEveryKind(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatalf("expected non-empty key list")
	}
	seen := map[Kind]bool{}
	for _, k := range all {
		seen[k.Kind] = true
	}
	for _, kind := range []Kind{KindKey, KindMouse, KindWheel} {
		if !seen[kind] {
			t.Errorf("expected at least one %v entry", kind)
		}
	}
}
