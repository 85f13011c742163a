package numbers

import (
	"math/big"

	"github.com/conwaylabs/countdown/internal/countdown/expr"
)

// outputLess orders results ascending by distance to the target, ties
// broken by the expression's Rank and then, since distinct
// expressions built from different operand positions can still carry
// an equal Rank, by the printed text itself so the final order never
// depends on map iteration order.
func outputLess(a, b expr.Expression, target *big.Int) bool {
	da, db := distance(a.Value(), target), distance(b.Value(), target)
	if c := da.Cmp(db); c != 0 {
		return c < 0
	}
	if ra, rb := a.Rank(), b.Rank(); ra.Compare(rb) != 0 {
		return ra.Less(rb)
	}
	return a.String() < b.String()
}

func distance(value, target *big.Int) *big.Int {
	d := new(big.Int).Sub(value, target)
	return d.Abs(d)
}
