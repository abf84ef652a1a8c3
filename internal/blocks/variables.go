package blocks

import (
	"github.com/blocklang/blockgen/internal/codegen"
)

func registerVariables(g *codegen.Generator) {
	g.RegisterValue("variables_get", variablesGet)
	g.RegisterStatement("variables_set", variablesSet)
	g.RegisterStatement("variables_change", variablesChange)
}

func variablesGet(c *codegen.Context, b codegen.Block) (string, codegen.Order) {
	return c.VariableName(b.Field("VAR")), codegen.OrderAtomic
}

func variablesSet(c *codegen.Context, b codegen.Block) string {
	value := orDefault(c.ValueToCode(b, "VALUE", codegen.OrderAssignment), "0")
	return c.VariableName(b.Field("VAR")) + " = " + value + ";\n"
}

func variablesChange(c *codegen.Context, b codegen.Block) string {
	delta := orDefault(c.ValueToCode(b, "DELTA", codegen.OrderAddition), "0")
	name := c.VariableName(b.Field("VAR"))
	return name + " = " + name + " + " + delta + ";\n"
}
