package codegen

// Order is the binding strength of a generated JavaScript expression.
// Lower ranks bind tighter. OrderAtomic is a bare literal or identifier;
// OrderNone means the surrounding context imposes no constraint.
//
// The constants are an ordered enumeration; the actual comparison happens
// on an integer rank table so that operators which share a binding level
// (increment/decrement, relational/in/instanceof) can say so explicitly.
type Order int

const (
	OrderAtomic Order = iota // 0 "" ...
	OrderNew                 // new
	OrderMember              // . []
	OrderFunctionCall        // ()
	OrderIncrement           // ++
	OrderDecrement           // --
	OrderBitwiseNot          // ~
	OrderUnaryPlus           // +
	OrderUnaryNegation       // -
	OrderLogicalNot          // !
	OrderTypeof              // typeof
	OrderVoid                // void
	OrderDelete              // delete
	OrderAwait               // await
	OrderExponentiation      // **
	OrderMultiplication      // *
	OrderDivision            // /
	OrderModulus             // %
	OrderSubtraction         // -
	OrderAddition            // +
	OrderBitwiseShift        // << >> >>>
	OrderRelational          // < <= > >=
	OrderIn                  // in
	OrderInstanceof          // instanceof
	OrderEquality            // == != === !==
	OrderBitwiseAnd          // &
	OrderBitwiseXor          // ^
	OrderBitwiseOr           // |
	OrderLogicalAnd          // &&
	OrderLogicalOr           // ||
	OrderConditional         // ?:
	OrderAssignment          // = += -= *= /=
	OrderYield               // yield
	OrderComma               // ,
	OrderNone                // no constraint
)

var orderRank = [...]int{
	OrderAtomic:         0,
	OrderNew:            1,
	OrderMember:         2,
	OrderFunctionCall:   3,
	OrderIncrement:      4,
	OrderDecrement:      4, // shares a level with increment
	OrderBitwiseNot:     5,
	OrderUnaryPlus:      6,
	OrderUnaryNegation:  7,
	OrderLogicalNot:     8,
	OrderTypeof:         9,
	OrderVoid:           10,
	OrderDelete:         11,
	OrderAwait:          12,
	OrderExponentiation: 13,
	OrderMultiplication: 14,
	OrderDivision:       15,
	OrderModulus:        16,
	OrderSubtraction:    17,
	OrderAddition:       18,
	OrderBitwiseShift:   19,
	OrderRelational:     20,
	OrderIn:             20, // relational, in and instanceof share a level
	OrderInstanceof:     20,
	OrderEquality:       21,
	OrderBitwiseAnd:     22,
	OrderBitwiseXor:     23,
	OrderBitwiseOr:      24,
	OrderLogicalAnd:     25,
	OrderLogicalOr:      26,
	OrderConditional:    27,
	OrderAssignment:     28,
	OrderYield:          29,
	OrderComma:          30,
	OrderNone:           99,
}

func (o Order) rank() int {
	return orderRank[o]
}

type orderPair struct {
	producer Order
	consumer Order
}

// orderOverrides lists (producer, consumer) combinations the grammar lets
// through without parentheses even though rank comparison alone would keep
// them: member/call chaining and associative chains of one operator. The
// table is fixed data; downstream tooling depends on these exact pairs.
var orderOverrides = map[orderPair]bool{
	{OrderFunctionCall, OrderMember}:       true, // (foo()).bar -> foo().bar
	{OrderFunctionCall, OrderFunctionCall}: true, // (foo())() -> foo()()
	{OrderMember, OrderMember}:             true, // (foo.bar).baz -> foo.bar.baz
	{OrderMember, OrderFunctionCall}:       true, // (foo.bar)() -> foo.bar()
	{OrderLogicalNot, OrderLogicalNot}:     true, // !(!foo) -> !!foo
	{OrderMultiplication, OrderMultiplication}: true, // a * (b * c) -> a * b * c
	{OrderAddition, OrderAddition}:             true, // a + (b + c) -> a + b + c
	{OrderLogicalAnd, OrderLogicalAnd}:         true, // a && (b && c) -> a && b && c
	{OrderLogicalOr, OrderLogicalOr}:           true, // a || (b || c) -> a || b || c
}

// Wrap parenthesizes code when an expression produced at precedence producer
// cannot be substituted bare into a context that accepts at most consumerMax.
// Equal binding strength wraps too, unless the level is atomic or
// unconstrained or the pair is overridden: equality is exactly where
// associativity decides, and the override table names the associative cases.
func Wrap(code string, producer, consumerMax Order) string {
	p, m := producer.rank(), consumerMax.rank()
	if p < m {
		return code
	}
	if p == m && (p == orderRank[OrderAtomic] || p == orderRank[OrderNone]) {
		return code
	}
	if orderOverrides[orderPair{producer, consumerMax}] {
		return code
	}
	return "(" + code + ")"
}
