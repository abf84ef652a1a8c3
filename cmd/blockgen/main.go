package main

import (
	"os"

	"github.com/blocklang/blockgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
