package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/blocklang/blockgen/internal/blocks"
	"github.com/blocklang/blockgen/internal/workspace"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Generate code interactively",
	Long: `Reads one workspace JSON document per line and prints the generated
JavaScript. A bare block object is treated as a single-block workspace.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		gen := blocks.Standard()
		for {
			input, err := line.Prompt("blockgen> ")
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				return nil
			}
			if err != nil {
				return err
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			line.AppendHistory(input)

			doc := input
			if !strings.Contains(input, `"blocks"`) {
				// Shorthand: a bare block object becomes a one-block workspace.
				doc = `{"blocks": [` + input + `]}`
			}
			ws, err := workspace.Load([]byte(doc))
			if err != nil {
				color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			code, err := gen.WorkspaceToCode(ws)
			if err != nil {
				color.New(color.FgYellow).Fprintf(os.Stderr, "warning: %v\n", err)
			}
			fmt.Print(code)
		}
	},
}
