package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invertedmushroom/bg3bridge/keycode"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognized input names and their virtual-key codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range keycode.All() {
			if k.Kind == keycode.KindWheel {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-6s -\n", k.Name, k.Kind)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-6s 0x%02X\n", k.Name, k.Kind, k.VK)
		}
		return nil
	},
}
