package cmd

import (
	"github.com/spf13/cobra"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "blockgen",
	Short: "blockgen — block workspace to JavaScript generator",
	Long: `blockgen turns serialized block workspaces into JavaScript source.

Commands:
  generate  Compile a workspace (.json) file into JavaScript
  blocks    List the registered block kinds
  repl      Generate code interactively, one workspace document per line
`,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for generated files")

	rootCmd.AddCommand(GenerateCmd, BlocksCmd, ReplCmd)
}
