// Package numbers implements the Countdown numbers solver: the
// canonical-expression enumerator, its usefulness and multiset
// pruning rules, and the distance-to-target ranking of results.
package numbers

import (
	"math/big"

	"github.com/conwaylabs/countdown/internal/countdown/expr"
)

var one = big.NewInt(1)

// MightBeUseful is the cheap pre-filter applied before Combine: it
// rejects operand pairs that are guaranteed to produce a redundant,
// non-canonical, non-positive, or identity result, without having to
// construct the combined Expression first.
func MightBeUseful(e1, e2 expr.Expression, op expr.Op) bool {
	v1, v2 := e1.Value(), e2.Value()
	switch op {
	case expr.Add:
		// commutative: canonical order requires the larger (or
		// equal) operand on the left.
		return v1.Cmp(v2) >= 0
	case expr.Sub:
		// a - b is only useful (and positive) when a is strictly
		// larger than b.
		return v1.Cmp(v2) > 0
	case expr.Mul:
		// canonical order, and no multiplying by the identity 1.
		return v1.Cmp(v2) >= 0 && v2.Sign() > 0 && !isOne(v2)
	case expr.Div:
		// canonical order, and no dividing by the identity 1.
		return v1.Cmp(v2) >= 0 && v2.Sign() > 0 && !isOne(v2)
	default:
		return false
	}
}

func isOne(v *big.Int) bool { return v.Cmp(one) == 0 }
