package keytable

import (
	"strings"
	"testing"
)

func TestJSON_RoundTrip(t *testing.T) {
	tbl, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := tbl.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("unbound actions must encode as empty arrays, got %s", data)
	}

	var back Table
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Rows) != len(tbl.Rows) {
		t.Fatalf("row count changed: %d vs %d", len(back.Rows), len(tbl.Rows))
	}
	if back.Rows[0].Action != "Jump" {
		t.Errorf("unexpected first row: %+v", back.Rows[0])
	}
}

func TestJSON_RejectsEmptyAction(t *testing.T) {
	var tbl Table
	if err := tbl.UnmarshalJSON([]byte(`[{"action":"","keys":["Z"]}]`)); err == nil {
		t.Errorf("expected error for empty action name")
	}
}
