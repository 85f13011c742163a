package expr

import "strings"

// String renders the expression per the pretty-printing rules: a
// constant prints as its decimal value; a chain prints its parts
// joined by the operator implied by each part's sign, with its first
// (always positive) part's operator omitted. An additive chain
// nested inside a multiplicative chain is parenthesized; no other
// nesting needs parentheses because flattening guarantees no chain
// ever directly contains a same-kind child.
func (c *Constant) String() string {
	return c.operand.Value.String()
}

func (c *Chain) String() string {
	var b strings.Builder
	opFor := additiveOps
	if c.kind == KindMultiplicative {
		opFor = multiplicativeOps
	}
	for i, p := range c.parts {
		s := childString(p.Expr, c.kind)
		if i == 0 {
			b.WriteString(s)
			continue
		}
		b.WriteByte(' ')
		if p.Sign > 0 {
			b.WriteByte(opFor[0])
		} else {
			b.WriteByte(opFor[1])
		}
		b.WriteByte(' ')
		b.WriteString(s)
	}
	return b.String()
}

var additiveOps = [2]byte{'+', '-'}
var multiplicativeOps = [2]byte{'*', '/'}

// childString wraps an additive child of a multiplicative parent in
// parentheses; every other combination prints unadorned.
func childString(e Expression, parentKind Kind) string {
	if parentKind == KindMultiplicative && e.Kind() == KindAdditive {
		return "(" + e.String() + ")"
	}
	return e.String()
}
