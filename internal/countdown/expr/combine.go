package expr

import (
	"fmt"
	"math/big"
	"sort"
)

// Op is one of the four Countdown arithmetic operators.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		panic(fmt.Sprintf("expr: unknown operator tag %d", int(op)))
	}
}

// kindOf reports the chain type a given operator produces.
func kindOf(op Op) Kind {
	switch op {
	case Add, Sub:
		return KindAdditive
	case Mul, Div:
		return KindMultiplicative
	default:
		panic(fmt.Sprintf("expr: unknown operator tag %d", int(op)))
	}
}

// Combine is constructor C2: it builds the canonical Expression for
// e1 op e2, flattening same-type children and sorting parts into
// canonical order. ok is false when the value is not a positive
// integer, in which case the candidate must be discarded rather than
// inserted into the pool.
func Combine(e1, e2 Expression, op Op) (result Expression, ok bool) {
	kind := kindOf(op)

	value, exact := apply(op, e1.Value(), e2.Value())
	if !exact || value.Sign() <= 0 {
		return nil, false
	}

	leftSign, rightSign := 1, 1
	if op == Sub || op == Div {
		rightSign = -1
	}

	parts := make([]Part, 0, len(partsFor(e1, kind, leftSign))+len(partsFor(e2, kind, rightSign)))
	parts = append(parts, partsFor(e1, kind, leftSign)...)
	parts = append(parts, partsFor(e2, kind, rightSign)...)

	sort.SliceStable(parts, func(i, j int) bool {
		return lessPart(parts[i], parts[j])
	})

	return &Chain{kind: kind, parts: parts, value: value}, true
}

// apply performs the arithmetic exactly, in *big.Int, reporting
// whether the result is an exact integer. Division is checked with
// QuoRem rather than computed as a float, per the exact-arithmetic
// requirement.
func apply(op Op, a, b *big.Int) (value *big.Int, exact bool) {
	switch op {
	case Add:
		return new(big.Int).Add(a, b), true
	case Sub:
		return new(big.Int).Sub(a, b), true
	case Mul:
		return new(big.Int).Mul(a, b), true
	case Div:
		if b.Sign() == 0 {
			return nil, false
		}
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(a, b, r)
		return q, r.Sign() == 0
	default:
		panic(fmt.Sprintf("expr: unknown operator tag %d", int(op)))
	}
}

// partsFor returns the (part, sign) contribution of child to a chain
// of the given kind: a flattened splice if child is already the same
// kind, or a single wrapped part otherwise. operatorSign is the sign
// this child contributes as a whole (+1 for the left operand, and for
// the right operand of + or *; -1 for the right operand of - or /).
func partsFor(child Expression, kind Kind, operatorSign int) []Part {
	if child.Kind() == kind {
		childParts := child.Parts()
		out := make([]Part, len(childParts))
		for i, p := range childParts {
			out[i] = Part{Expr: p.Expr, Sign: p.Sign * operatorSign}
		}
		return out
	}
	return []Part{{Expr: child, Sign: operatorSign}}
}

// lessPart implements the canonical ordering key (-sign, -value,
// rank): positive-sign parts first, then descending by value, then
// ascending by the total Rank order.
func lessPart(a, b Part) bool {
	if a.Sign != b.Sign {
		return a.Sign > b.Sign
	}
	if c := a.Expr.Value().Cmp(b.Expr.Value()); c != 0 {
		return c > 0
	}
	return a.Expr.Rank().Less(b.Expr.Rank())
}
