package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsTighterBindings(t *testing.T) {
	tests := []struct {
		name     string
		producer Order
		consumer Order
	}{
		{"atomic into member", OrderAtomic, OrderMember},
		{"atomic into none", OrderAtomic, OrderNone},
		{"member into call", OrderMember, OrderFunctionCall},
		{"multiplication into addition", OrderMultiplication, OrderAddition},
		{"anything into none", OrderComma, OrderNone},
		{"atomic boundary", OrderAtomic, OrderAtomic},
		{"none boundary", OrderNone, OrderNone},
		{"addition boundary is overridden", OrderAddition, OrderAddition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "x", Wrap("x", tt.producer, tt.consumer))
		})
	}
}

func TestWrapAddsOnePairOfParens(t *testing.T) {
	tests := []struct {
		name     string
		producer Order
		consumer Order
	}{
		{"addition into multiplication", OrderAddition, OrderMultiplication},
		{"logical or into logical and", OrderLogicalOr, OrderLogicalAnd},
		{"conditional into atomic", OrderConditional, OrderAtomic},
		{"assignment into addition", OrderAssignment, OrderAddition},
		{"addition into subtraction", OrderAddition, OrderSubtraction},
		{"unary negation into member", OrderUnaryNegation, OrderMember},
		// Equality wraps unless overridden: subtraction is left
		// associative, so the right operand of a - keeps its parens.
		{"subtraction boundary", OrderSubtraction, OrderSubtraction},
		{"division boundary", OrderDivision, OrderDivision},
		{"unary negation boundary", OrderUnaryNegation, OrderUnaryNegation},
		{"shared rank still wraps", OrderIn, OrderRelational},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "(x)", Wrap("x", tt.producer, tt.consumer))
		})
	}
}

func TestWrapOverridePairs(t *testing.T) {
	// The full fixed override table. Every pair substitutes bare even where
	// rank comparison alone would parenthesize.
	pairs := []struct {
		producer Order
		consumer Order
	}{
		{OrderFunctionCall, OrderMember},
		{OrderFunctionCall, OrderFunctionCall},
		{OrderMember, OrderMember},
		{OrderMember, OrderFunctionCall},
		{OrderLogicalNot, OrderLogicalNot},
		{OrderMultiplication, OrderMultiplication},
		{OrderAddition, OrderAddition},
		{OrderLogicalAnd, OrderLogicalAnd},
		{OrderLogicalOr, OrderLogicalOr},
	}
	for _, p := range pairs {
		assert.Equal(t, "x", Wrap("x", p.producer, p.consumer),
			"producer %d into consumer %d", p.producer, p.consumer)
	}
}

func TestWrapCallIntoMemberChains(t *testing.T) {
	// (foo()).bar elides to foo().bar only because of the override; the
	// call's rank alone is looser than the member context demands.
	assert.Greater(t, OrderFunctionCall.rank(), OrderMember.rank())
	assert.Equal(t, "foo()", Wrap("foo()", OrderFunctionCall, OrderMember))
}

func TestOrderRanksPreserveDocumentedOrdering(t *testing.T) {
	assert.Equal(t, OrderIncrement.rank(), OrderDecrement.rank())
	assert.Less(t, OrderNew.rank(), OrderMember.rank())
	assert.Less(t, OrderMember.rank(), OrderFunctionCall.rank())
	assert.Less(t, OrderExponentiation.rank(), OrderMultiplication.rank())
	assert.Less(t, OrderSubtraction.rank(), OrderAddition.rank())
	assert.Less(t, OrderLogicalAnd.rank(), OrderLogicalOr.rank())
	assert.Greater(t, OrderNone.rank(), OrderComma.rank())
}
