package blocks

import (
	"strings"

	"github.com/blocklang/blockgen/internal/codegen"
)

func registerText(g *codegen.Generator) {
	g.RegisterValue("text", textLiteral)
	g.RegisterValue("text_multiline", textMultiline)
	g.RegisterValue("text_join", textJoin)
	g.RegisterValue("text_charAt", textCharAt)
	g.RegisterStatement("text_print", textPrint)
}

func textLiteral(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	return codegen.Quote(b.Field("TEXT")), codegen.OrderAtomic
}

func textMultiline(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	code := codegen.MultilineQuote(b.Field("TEXT"))
	if strings.Contains(code, " + ") {
		return code, codegen.OrderAddition
	}
	return code, codegen.OrderAtomic
}

func textJoin(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	var parts []string
	for _, in := range b.Inputs() {
		if !in.IsValue {
			continue
		}
		parts = append(parts, orDefault(c.ValueToCode(b, in.Name, codegen.OrderAddition), "''"))
	}
	switch len(parts) {
	case 0:
		return "''", codegen.OrderAtomic
	case 1:
		return "String(" + parts[0] + ")", codegen.OrderFunctionCall
	}
	return strings.Join(parts, " + "), codegen.OrderAddition
}

// textCharAt picks one character out of a string, counting from either end.
// The index arithmetic runs through the adjusted-index builder so constant
// positions fold and dynamic ones stay parenthesized correctly.
func textCharAt(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	text := orDefault(c.ValueToCode(b, "VALUE", codegen.OrderMember), "''")
	switch b.Field("WHERE") {
	case "FROM_END":
		at := c.AdjustedIndexInput(b, "AT", 1, true, codegen.OrderNone)
		return text + ".slice(" + at + ").charAt(0)", codegen.OrderFunctionCall
	case "FIRST":
		return text + ".charAt(0)", codegen.OrderFunctionCall
	case "LAST":
		return text + ".slice(-1)", codegen.OrderFunctionCall
	default: // FROM_START
		at := c.AdjustedIndexInput(b, "AT", 0, false, codegen.OrderNone)
		return text + ".charAt(" + at + ")", codegen.OrderFunctionCall
	}
}

func textPrint(c *codegen.Context, b codegen.Block) string {
	msg := orDefault(c.ValueToCode(b, "TEXT", codegen.OrderComma), "''")
	return "console.log(" + msg + ");\n"
}
