package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/invertedmushroom/bg3bridge/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse the keybinding table interactively",
	Long: `Browse opens a read-only terminal browser over the keybinding table.
When a file is given it is watched and reloaded on change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, path, err := loadTable(args)
		if err != nil {
			return err
		}
		p := tea.NewProgram(ui.New(tbl, path), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
