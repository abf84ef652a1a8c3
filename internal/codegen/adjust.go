package codegen

import (
	"strconv"
	"strings"
)

// IndexDemand reports the precedence a caller should request when fetching
// the index expression that AdjustedIndex will rewrite. Pending arithmetic
// on the index raises the demand to the operator about to be applied.
func IndexDemand(delta int, negate bool, requested Order, oneBased bool) Order {
	if oneBased {
		delta--
	}
	switch {
	case delta > 0:
		return OrderAddition
	case delta < 0:
		return OrderSubtraction
	case negate:
		return OrderUnaryNegation
	}
	return requested
}

// AdjustedIndex builds an index expression shifted by delta and optionally
// negated, folding the arithmetic when code is a bare numeric literal and
// deferring it to run time otherwise. A one-based index origin shifts the
// delta down by one, since internal arithmetic targets a zero-based
// reference point. An empty code means no producer was connected; the
// origin's default index stands in.
func AdjustedIndex(code string, delta int, negate bool, requested Order, oneBased bool) string {
	if oneBased {
		delta--
	}
	if code == "" {
		if oneBased {
			code = "1"
		} else {
			code = "0"
		}
	}

	if n, err := strconv.Atoi(strings.TrimSpace(code)); err == nil {
		// Literal index: fold the shift now. A literal is atomic, so the
		// result never needs parentheses.
		n += delta
		if negate {
			n = -n
		}
		return strconv.Itoa(n)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(code), 64); err == nil {
		f += float64(delta)
		if negate {
			f = -f
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	// Dynamic index with nothing applied: pass through untouched. Wrapping
	// is the call site's concern, not this routine's.
	if delta == 0 && !negate {
		return code
	}

	// Defer the arithmetic to run time.
	inner := requested
	switch {
	case delta > 0:
		code += " + " + strconv.Itoa(delta)
		inner = OrderAddition
	case delta < 0:
		code += " - " + strconv.Itoa(-delta)
		inner = OrderSubtraction
	}
	if negate {
		if delta != 0 {
			code = "-(" + code + ")"
		} else {
			code = "-" + code
		}
		inner = OrderUnaryNegation
	}
	return Wrap(code, inner, requested)
}

// AdjustedIndexInput fetches the named value input and applies the index
// adjustment in one step, using the workspace's index origin.
func (c *Context) AdjustedIndexInput(b Block, input string, delta int, negate bool, requested Order) string {
	oneBased := c.ws.OneBasedIndex()
	demand := IndexDemand(delta, negate, requested, oneBased)
	code := c.ValueToCode(b, input, demand)
	return AdjustedIndex(code, delta, negate, requested, oneBased)
}
