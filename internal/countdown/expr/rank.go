package expr

import "math/big"

// Rank is the canonical tiebreak order on Expressions: ascending by
// (Mass, Depth, PartCount, PartRanks, -Value, Kind). It is used both
// to order same-sign, same-value parts within a chain (the "rank"
// column of the sort key in the construction rule) and, at the top
// level, to break distance-to-target ties between printed results.
//
// PartRanks recursion terminates because every part is a strict
// subtree of its parent: comparing two chains with equal Mass, Depth
// and PartCount only ever recurses into parts whose Depth is
// strictly less than the parent's, so the comparison cannot cycle.
type Rank struct {
	Mass      int
	Depth     int
	PartCount int
	PartRanks []Rank
	NegValue  *big.Int
	Kind      Kind
}

// Less reports whether r sorts before other under the canonical
// total order.
func (r Rank) Less(other Rank) bool {
	return compareRank(r, other) < 0
}

// Compare returns -1, 0 or 1 as r sorts before, equal to, or after
// other.
func (r Rank) Compare(other Rank) int {
	return compareRank(r, other)
}

func compareRank(a, b Rank) int {
	if a.Mass != b.Mass {
		return cmpInt(a.Mass, b.Mass)
	}
	if a.Depth != b.Depth {
		return cmpInt(a.Depth, b.Depth)
	}
	if a.PartCount != b.PartCount {
		return cmpInt(a.PartCount, b.PartCount)
	}
	if c := comparePartRanks(a.PartRanks, b.PartRanks); c != 0 {
		return c
	}
	if c := a.NegValue.Cmp(b.NegValue); c != 0 {
		// ascending by -value, i.e. descending by value.
		return c
	}
	return cmpInt(int(a.Kind), int(b.Kind))
}

func comparePartRanks(a, b []Rank) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareRank(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// rankOf computes the Rank for either variant, used both by
// Constant.Rank/Chain.Rank and by the construction sort key.
func rankOf(e Expression) Rank {
	parts := e.Parts()
	ranks := make([]Rank, len(parts))
	for i, p := range parts {
		ranks[i] = p.Expr.Rank()
	}
	return Rank{
		Mass:      e.Mass(),
		Depth:     e.Depth(),
		PartCount: len(parts),
		PartRanks: ranks,
		NegValue:  new(big.Int).Neg(e.Value()),
		Kind:      e.Kind(),
	}
}

func (c *Constant) Rank() Rank { return rankOf(c) }
func (c *Chain) Rank() Rank    { return rankOf(c) }
