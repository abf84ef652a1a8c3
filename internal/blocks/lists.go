package blocks

import (
	"strings"

	"github.com/blocklang/blockgen/internal/codegen"
)

func registerLists(g *codegen.Generator) {
	g.RegisterValue("lists_create_with", listsCreateWith)
	g.RegisterValue("lists_length", listsLength)
	g.RegisterValue("lists_getIndex", listsGetIndex)
}

func listsCreateWith(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	var parts []string
	for _, in := range b.Inputs() {
		if !in.IsValue {
			continue
		}
		parts = append(parts, orDefault(c.ValueToCode(b, in.Name, codegen.OrderComma), "null"))
	}
	return "[" + strings.Join(parts, ", ") + "]", codegen.OrderAtomic
}

func listsLength(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	list := orDefault(c.ValueToCode(b, "VALUE", codegen.OrderMember), "[]")
	return list + ".length", codegen.OrderMember
}

// listsGetIndex reads one element, counting from either end of the list.
// Index-origin and end-relative arithmetic go through the adjusted-index
// builder.
func listsGetIndex(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	list := orDefault(c.ValueToCode(b, "VALUE", codegen.OrderMember), "[]")
	switch b.Field("WHERE") {
	case "FROM_END":
		at := c.AdjustedIndexInput(b, "AT", 1, true, codegen.OrderNone)
		return list + ".slice(" + at + ")[0]", codegen.OrderMember
	case "FIRST":
		return list + "[0]", codegen.OrderMember
	case "LAST":
		return list + ".slice(-1)[0]", codegen.OrderMember
	default: // FROM_START
		at := c.AdjustedIndexInput(b, "AT", 0, false, codegen.OrderNone)
		return list + "[" + at + "]", codegen.OrderMember
	}
}
