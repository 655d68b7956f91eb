package keytable

import (
	"strings"
	"testing"
)

func findingsOf(kind FindingKind, fs []Finding) []Finding {
	var out []Finding
	for _, f := range fs {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func TestLint_SharedKey(t *testing.T) {
	src := `| Action | PC Key Bindings |
|---|---|
| Cycle Characters Next | F |
| Cycle Characters Prev | F |
| Jump | Z |
`
	tbl, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	shared := findingsOf(SharedKey, tbl.Lint())
	if len(shared) != 1 {
		t.Fatalf("expected 1 shared-key finding, got %d", len(shared))
	}
	if shared[0].Subject != "F" || len(shared[0].Actions) != 2 {
		t.Errorf("unexpected finding: %+v", shared[0])
	}
}

func TestLint_ChordsDoNotCollideWithBareKeys(t *testing.T) {
	src := `| Action | PC Key Bindings |
|---|---|
| End Turn | Space |
| Leave Turn-based Mode | Shift + Space |
`
	tbl, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shared := findingsOf(SharedKey, tbl.Lint()); len(shared) != 0 {
		t.Errorf("chord must not collide with its base key: %v", shared)
	}
}

func TestLint_UnboundAndDuplicate(t *testing.T) {
	src := `| Action | PC Key Bindings |
|---|---|
| Go to Camp | |
| Jump | Z |
| Jump | Space |
`
	tbl, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fs := tbl.Lint()

	unbound := findingsOf(UnboundAction, fs)
	if len(unbound) != 1 || unbound[0].Subject != "Go to Camp" {
		t.Errorf("expected unbound-action for Go to Camp, got %v", unbound)
	}
	dup := findingsOf(DuplicateAction, fs)
	if len(dup) != 1 || dup[0].Subject != "Jump" {
		t.Errorf("expected duplicate-action for Jump, got %v", dup)
	}
}

func TestLint_UnknownKey(t *testing.T) {
	src := `| Action | PC Key Bindings |
|---|---|
| Jump | Hyper |
`
	tbl, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unknown := findingsOf(UnknownKey, tbl.Lint())
	if len(unknown) != 1 || unknown[0].Subject != "Hyper" {
		t.Errorf("expected unknown-key finding, got %v", unknown)
	}
}

func TestLint_DefaultTableFindings(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fs := tbl.Lint()

	// The embedded table carries the documented oddities: F shared between
	// the two cycle actions, and three unbound actions.
	var sawF bool
	for _, f := range findingsOf(SharedKey, fs) {
		if f.Subject == "F" {
			sawF = true
		}
	}
	if !sawF {
		t.Errorf("expected shared-key finding for F")
	}
	if got := len(findingsOf(UnboundAction, fs)); got != 3 {
		t.Errorf("expected 3 unbound actions, got %d", got)
	}
	if got := len(findingsOf(UnknownKey, fs)); got != 0 {
		t.Errorf("every binding in the reference table should resolve, got %d unknown", got)
	}
}

func TestLint_DoesNotMutate(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(tbl.Rows)
	_ = tbl.Lint()
	_ = tbl.Lint()
	if len(tbl.Rows) != before {
		t.Errorf("lint mutated the table")
	}
}
