package keytable

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// MarshalJSON encodes the table as a JSON array of rows. Unbound actions get
// an empty keys array rather than null so consumers can index blindly.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([]KeyBinding, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r
		if rows[i].Keys == nil {
			rows[i].Keys = []string{}
		}
	}
	return sonic.Marshal(rows)
}

// MarshalJSONIndent is MarshalJSON with two-space indentation, for the
// export command.
func (t *Table) MarshalJSONIndent() ([]byte, error) {
	rows := make([]KeyBinding, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r
		if rows[i].Keys == nil {
			rows[i].Keys = []string{}
		}
	}
	return sonic.MarshalIndent(rows, "", "  ")
}

// UnmarshalJSON decodes a JSON array of rows produced by MarshalJSON.
func (t *Table) UnmarshalJSON(data []byte) error {
	var rows []KeyBinding
	if err := sonic.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("decode keybinding JSON: %w", err)
	}
	for i, r := range rows {
		if r.Action == "" {
			return fmt.Errorf("row %d: empty action name", i)
		}
	}
	t.Rows = rows
	return nil
}
