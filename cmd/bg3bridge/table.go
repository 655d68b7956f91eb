package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invertedmushroom/bg3bridge/keytable"
)

// loadTable reads the table from the optional file argument, falling back to
// the embedded reference data.
func loadTable(args []string) (*keytable.Table, string, error) {
	if len(args) == 0 {
		tbl, err := keytable.Default()
		return tbl, "", err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	tbl, err := keytable.Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", args[0], err)
	}
	return tbl, args[0], nil
}

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the keybinding table in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, _, err := loadTable(args)
		if err != nil {
			return err
		}
		return tbl.Render(os.Stdout)
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Report table oddities for human review",
	Long: `Lint reports shared physical keys, unbound actions, duplicate action
names and unresolvable key names. Findings are informational; the command
always exits zero on a well-formed table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, _, err := loadTable(args)
		if err != nil {
			return err
		}
		findings := tbl.Lint()
		for _, f := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), f.String())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d actions, %d findings\n", len(tbl.Rows), len(findings))
		return nil
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Rewrite a table file in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, path, err := loadTable(args)
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp(filepath.Dir(path), ".bg3bridge-fmt-*")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())

		if err := tbl.Render(tmp); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}
		return os.Rename(tmp.Name(), path)
	},
}

var exportIndent bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the table as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, _, err := loadTable(args)
		if err != nil {
			return err
		}
		var data []byte
		if exportIndent {
			data, err = tbl.MarshalJSONIndent()
		} else {
			data, err = tbl.MarshalJSON()
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportIndent, "indent", false, "indent the JSON output")
}
