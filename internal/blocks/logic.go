package blocks

import (
	"github.com/blocklang/blockgen/internal/codegen"
)

func registerLogic(g *codegen.Generator) {
	g.RegisterValue("logic_boolean", logicBoolean)
	g.RegisterValue("logic_compare", logicCompare)
	g.RegisterValue("logic_operation", logicOperation)
	g.RegisterValue("logic_negate", logicNegate)
	g.RegisterStatement("controls_if", controlsIf)
}

func logicBoolean(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	if b.Field("BOOL") == "TRUE" {
		return "true", codegen.OrderAtomic
	}
	return "false", codegen.OrderAtomic
}

var compareOps = map[string]binaryOp{
	"EQ":  {" == ", codegen.OrderEquality},
	"NEQ": {" != ", codegen.OrderEquality},
	"LT":  {" < ", codegen.OrderRelational},
	"LTE": {" <= ", codegen.OrderRelational},
	"GT":  {" > ", codegen.OrderRelational},
	"GTE": {" >= ", codegen.OrderRelational},
}

func logicCompare(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	op, ok := compareOps[b.Field("OP")]
	if !ok {
		op = compareOps["EQ"]
	}
	a := orDefault(c.ValueToCode(b, "A", op.order), "false")
	bb := orDefault(c.ValueToCode(b, "B", op.order), "false")
	return a + op.op + bb, op.order
}

func logicOperation(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	op := binaryOp{" && ", codegen.OrderLogicalAnd}
	if b.Field("OP") == "OR" {
		op = binaryOp{" || ", codegen.OrderLogicalOr}
	}
	a := orDefault(c.ValueToCode(b, "A", op.order), "false")
	bb := orDefault(c.ValueToCode(b, "B", op.order), "false")
	return a + op.op + bb, op.order
}

func logicNegate(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	arg := orDefault(c.ValueToCode(b, "BOOL", codegen.OrderLogicalNot), "true")
	return "!" + arg, codegen.OrderLogicalNot
}

func controlsIf(c *codegen.Context, b codegen.Block) string {
	cond := orDefault(c.ValueToCode(b, "IF", codegen.OrderNone), "false")
	body := c.StatementToCode(b, "DO")
	code := "if (" + cond + ") {\n" + body + "}"
	if elseBody := c.StatementToCode(b, "ELSE"); elseBody != "" {
		code += " else {\n" + elseBody + "}"
	}
	return code + "\n"
}
