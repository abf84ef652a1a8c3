// Package driver ties the workspace loader and the codegen core together
// for the CLI.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blocklang/blockgen/internal/blocks"
	"github.com/blocklang/blockgen/internal/workspace"
)

// Generate loads a serialized workspace and produces JavaScript source.
func Generate(srcPath string) (string, error) {
	if err := validateExtension(srcPath); err != nil {
		return "", err
	}
	ws, err := workspace.LoadFile(srcPath)
	if err != nil {
		return "", err
	}
	code, err := blocks.Standard().WorkspaceToCode(ws)
	if err != nil {
		return "", fmt.Errorf("generating %s: %w", srcPath, err)
	}
	return code, nil
}

// GenerateAndWrite generates code for srcPath and writes the .js result
// into outDir, returning the output path.
func GenerateAndWrite(srcPath, outDir string) (string, error) {
	code, err := Generate(srcPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	outFile := filepath.Join(outDir, base+".js")
	if err := os.WriteFile(outFile, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("writing output: %w", err)
	}
	return outFile, nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".json" {
		return fmt.Errorf("source must have .json extension")
	}
	return nil
}
