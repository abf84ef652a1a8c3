package blocks

import (
	"strings"

	"github.com/blocklang/blockgen/internal/codegen"
)

func registerMath(g *codegen.Generator) {
	g.RegisterValue("math_number", mathNumber)
	g.RegisterValue("math_arithmetic", mathArithmetic)
	g.RegisterValue("math_negate", mathNegate)
	g.RegisterValue("math_random_int", mathRandomInt)
}

func mathNumber(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	code := b.Field("NUM")
	if code == "" {
		code = "0"
	}
	if strings.HasPrefix(code, "-") {
		// A leading minus is unary negation as far as the grammar cares.
		return code, codegen.OrderUnaryNegation
	}
	return code, codegen.OrderAtomic
}

type binaryOp struct {
	op    string
	order codegen.Order
}

var arithmeticOps = map[string]binaryOp{
	"ADD":      {" + ", codegen.OrderAddition},
	"MINUS":    {" - ", codegen.OrderSubtraction},
	"MULTIPLY": {" * ", codegen.OrderMultiplication},
	"DIVIDE":   {" / ", codegen.OrderDivision},
}

func mathArithmetic(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	field := b.Field("OP")
	if field == "POWER" {
		// JavaScript's ** is right associative; Math.pow sidesteps that.
		a := c.ValueToCode(b, "A", codegen.OrderComma)
		bb := c.ValueToCode(b, "B", codegen.OrderComma)
		return "Math.pow(" + orDefault(a, "0") + ", " + orDefault(bb, "0") + ")",
			codegen.OrderFunctionCall
	}
	op, ok := arithmeticOps[field]
	if !ok {
		op = arithmeticOps["ADD"]
	}
	a := orDefault(c.ValueToCode(b, "A", op.order), "0")
	bb := orDefault(c.ValueToCode(b, "B", op.order), "0")
	return a + op.op + bb, op.order
}

func mathNegate(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	arg := orDefault(c.ValueToCode(b, "NUM", codegen.OrderUnaryNegation), "0")
	return "-" + arg, codegen.OrderUnaryNegation
}

func mathRandomInt(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	lo := orDefault(c.ValueToCode(b, "FROM", codegen.OrderComma), "0")
	hi := orDefault(c.ValueToCode(b, "TO", codegen.OrderComma), "0")
	fn := c.ProvideFunction("mathRandomInt",
		"function {{FN}}(a, b) {\n"+
			"  if (a > b) {\n"+
			"    var c = a;\n"+
			"    a = b;\n"+
			"    b = c;\n"+
			"  }\n"+
			"  return Math.floor(Math.random() * (b - a + 1) + a);\n"+
			"}")
	return fn + "(" + lo + ", " + hi + ")", codegen.OrderFunctionCall
}

func orDefault(code, fallback string) string {
	if code == "" {
		return fallback
	}
	return code
}
