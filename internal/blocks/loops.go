package blocks

import (
	"strconv"

	"github.com/blocklang/blockgen/internal/codegen"
)

func registerLoops(g *codegen.Generator) {
	g.RegisterStatement("controls_repeat_ext", controlsRepeatExt)
	g.RegisterStatement("controls_whileUntil", controlsWhileUntil)
}

// controlsRepeatExt emits a counted loop. When the repeat count is not a
// literal it is captured in a fresh temporary first so the bound is
// evaluated once.
func controlsRepeatExt(c *codegen.Context, b codegen.Block) string {
	repeats := orDefault(c.ValueToCode(b, "TIMES", codegen.OrderAssignment), "0")
	body := c.StatementToCode(b, "DO")

	var code string
	if _, err := strconv.Atoi(repeats); err != nil {
		endVar := c.DistinctName("repeat_end")
		code += "var " + endVar + " = " + repeats + ";\n"
		repeats = endVar
	}
	loopVar := c.DistinctName("count")
	code += "for (var " + loopVar + " = 0; " + loopVar + " < " + repeats + "; " +
		loopVar + "++) {\n" + body + "}\n"
	return code
}

func controlsWhileUntil(c *codegen.Context, b codegen.Block) string {
	until := b.Field("MODE") == "UNTIL"
	demand := codegen.OrderNone
	if until {
		demand = codegen.OrderLogicalNot
	}
	cond := orDefault(c.ValueToCode(b, "BOOL", demand), "false")
	if until {
		cond = "!" + cond
	}
	body := c.StatementToCode(b, "DO")
	return "while (" + cond + ") {\n" + body + "}\n"
}
