// Package blocks registers the standard block-kind emitters against the
// codegen core. Each emitter owns the local syntax of its kind; precedence,
// naming, comments and chaining are the core's job.
package blocks

import (
	"github.com/blocklang/blockgen/internal/codegen"
)

// Standard returns a generator with every stock block kind registered.
func Standard() *codegen.Generator {
	g := codegen.NewGenerator()
	registerMath(g)
	registerText(g)
	registerLogic(g)
	registerVariables(g)
	registerLists(g)
	registerLoops(g)
	return g
}
