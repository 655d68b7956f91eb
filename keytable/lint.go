package keytable

import (
	"fmt"
	"sort"

	"github.com/invertedmushroom/bg3bridge/keycode"
)

// FindingKind classifies a lint finding.
type FindingKind int

const (
	// SharedKey: one physical input bound to more than one distinct action.
	// The source document does this deliberately in places (modifier keys)
	// and by apparent mistake in others (Cycle Characters Next/Prev both on
	// F), so this is informational, never an error.
	SharedKey FindingKind = iota
	// UnboundAction: an action with an empty binding list.
	UnboundAction
	// DuplicateAction: the same action name appears in more than one row.
	DuplicateAction
	// UnknownKey: a binding entry that does not resolve to a known physical
	// input name.
	UnknownKey
)

func (k FindingKind) String() string {
	switch k {
	case SharedKey:
		return "shared-key"
	case UnboundAction:
		return "unbound-action"
	case DuplicateAction:
		return "duplicate-action"
	case UnknownKey:
		return "unknown-key"
	default:
		return "unknown"
	}
}

// Finding is a single lint observation for human review.
type Finding struct {
	Kind    FindingKind
	Subject string   // the key or action the finding is about
	Actions []string // affected actions, in row order
}

func (f Finding) String() string {
	switch f.Kind {
	case SharedKey:
		return fmt.Sprintf("%s: %q is bound to %d actions: %v", f.Kind, f.Subject, len(f.Actions), f.Actions)
	case UnboundAction:
		return fmt.Sprintf("%s: %q has no bindings", f.Kind, f.Subject)
	case DuplicateAction:
		return fmt.Sprintf("%s: %q appears in %d rows", f.Kind, f.Subject, len(f.Actions))
	case UnknownKey:
		return fmt.Sprintf("%s: %q (used by %v) is not a recognized input name", f.Kind, f.Subject, f.Actions)
	default:
		return fmt.Sprintf("%s: %q", f.Kind, f.Subject)
	}
}

// Lint inspects the table for content-accuracy concerns. It never fails and
// never mutates the table; an empty result means nothing worth review.
func (t *Table) Lint() []Finding {
	var findings []Finding

	// Shared physical keys. Chord bindings are compared whole, so
	// "Shift + Space" does not collide with "Space".
	byKey := t.ByKey()
	keyNames := make([]string, 0, len(byKey))
	for k := range byKey {
		keyNames = append(keyNames, k)
	}
	sort.Strings(keyNames)
	for _, k := range keyNames {
		actions := byKey[k]
		if len(distinct(actions)) > 1 {
			findings = append(findings, Finding{Kind: SharedKey, Subject: k, Actions: actions})
		}
	}

	// Unbound actions, in row order.
	for _, r := range t.Rows {
		if len(r.Keys) == 0 {
			findings = append(findings, Finding{Kind: UnboundAction, Subject: r.Action})
		}
	}

	// Duplicate action names.
	counts := make(map[string][]string)
	var order []string
	for _, r := range t.Rows {
		if len(counts[r.Action]) == 0 {
			order = append(order, r.Action)
		}
		counts[r.Action] = append(counts[r.Action], r.Action)
	}
	for _, a := range order {
		if len(counts[a]) > 1 {
			findings = append(findings, Finding{Kind: DuplicateAction, Subject: a, Actions: counts[a]})
		}
	}

	// Unresolvable binding names.
	seen := make(map[string]bool)
	for _, r := range t.Rows {
		for _, k := range r.Keys {
			if seen[k] {
				continue
			}
			if _, err := keycode.ParseChord(k); err != nil {
				findings = append(findings, Finding{Kind: UnknownKey, Subject: k, Actions: byKey[k]})
				seen[k] = true
			}
		}
	}

	tblLog.Debug().Int("findings", len(findings)).Msg("lint complete")
	return findings
}

func distinct(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
