package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/blocklang/blockgen/internal/blocks"
)

var BlocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the registered block kinds",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Kind", "Role"})
		for _, k := range blocks.Standard().Kinds() {
			table.Append([]string{k.Kind, k.Role})
		}
		table.Render()
	},
}
