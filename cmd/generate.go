package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blocklang/blockgen/internal/driver"
)

var printOnly bool

var GenerateCmd = &cobra.Command{
	Use:   "generate <workspace.json>",
	Short: "Compile a workspace file into JavaScript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if printOnly {
			code, err := driver.Generate(args[0])
			if err != nil {
				return fail(err)
			}
			fmt.Print(code)
			return nil
		}
		outFile, err := driver.GenerateAndWrite(args[0], outDir)
		if err != nil {
			return fail(err)
		}
		color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %s\n", outFile)
		return nil
	},
}

func fail(err error) error {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
	return err
}

func init() {
	GenerateCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print generated code to stdout instead of writing a file")
}
