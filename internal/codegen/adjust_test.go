package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedIndexFoldsLiterals(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		delta    int
		negate   bool
		oneBased bool
		want     string
	}{
		{"positive delta", "5", 2, false, false, "7"},
		{"negative delta", "5", -2, false, false, "3"},
		{"one-based shift then negate", "1", 0, true, true, "0"},
		{"one-based shift", "3", 0, false, true, "2"},
		{"negate only", "4", 0, true, false, "-4"},
		{"fold through zero", "1", -3, false, false, "-2"},
		{"float literal", "1.5", 1, false, false, "2.5"},
		{"whitespace literal", " 2 ", 1, false, false, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustedIndex(tt.code, tt.delta, tt.negate, OrderNone, tt.oneBased)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustedIndexDefaultLiteral(t *testing.T) {
	// No producer connected: the index origin's base literal stands in and
	// folds like any other literal.
	assert.Equal(t, "0", AdjustedIndex("", 0, false, OrderNone, false))
	// One-based: default 1, effective delta -1, folds to 0.
	assert.Equal(t, "0", AdjustedIndex("", 0, false, OrderNone, true))
	assert.Equal(t, "2", AdjustedIndex("", 2, false, OrderNone, false))
	// One-based: default 1, effective delta 2-1=1.
	assert.Equal(t, "2", AdjustedIndex("", 2, false, OrderNone, true))
}

func TestAdjustedIndexDynamicComposition(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		delta     int
		negate    bool
		requested Order
		oneBased  bool
		want      string
	}{
		{"identity pass-through", "i", 0, false, OrderNone, false, "i"},
		{"identity skips equal-rank wrapping", "a == b", 0, false, OrderEquality, false, "a == b"},
		{"append positive delta", "foo()", 1, false, OrderAddition, false, "foo() + 1"},
		{"append at no-constraint boundary", "foo()", 1, false, OrderNone, false, "foo() + 1"},
		{"append negative delta", "foo()", -1, false, OrderNone, false, "foo() - 1"},
		{"tight context wraps", "foo()", 1, false, OrderMember, false, "(foo() + 1)"},
		{"negate without delta", "i", 0, true, OrderNone, false, "-i"},
		{"negate after delta", "foo()", 1, true, OrderNone, false, "-(foo() + 1)"},
		{"one-based shifts dynamic", "i", 0, false, OrderNone, true, "i - 1"},
		{"one-based cancels delta", "i", 1, false, OrderNone, true, "i"},
		{"negation in member context wraps", "i", 0, true, OrderMember, false, "(-i)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustedIndex(tt.code, tt.delta, tt.negate, tt.requested, tt.oneBased)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexDemand(t *testing.T) {
	assert.Equal(t, OrderAddition, IndexDemand(1, false, OrderNone, false))
	assert.Equal(t, OrderSubtraction, IndexDemand(-1, false, OrderNone, false))
	assert.Equal(t, OrderUnaryNegation, IndexDemand(0, true, OrderNone, false))
	assert.Equal(t, OrderMember, IndexDemand(0, false, OrderMember, false))
	// One-based origin shifts the delta before the branch is picked.
	assert.Equal(t, OrderSubtraction, IndexDemand(0, false, OrderNone, true))
	assert.Equal(t, OrderUnaryNegation, IndexDemand(1, true, OrderNone, true))
}
