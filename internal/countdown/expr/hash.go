package expr

import "hash/fnv"

// Equal reports whether a and b are the same canonical expression:
// equal value, equal kind, and elementwise-equal (part, sign) pairs.
// Because parts are always stored in canonical order, this is a plain
// structural comparison with no need to try alternate orderings.
func Equal(a, b Expression) bool {
	if a.Kind() != b.Kind() || a.Value().Cmp(b.Value()) != 0 {
		return false
	}
	if a.Kind() == KindConstant {
		return true
	}
	pa, pb := a.Parts(), b.Parts()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i].Sign != pb[i].Sign {
			return false
		}
		if !Equal(pa[i].Expr, pb[i].Expr) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: equal expressions hash
// equal. The enumerator's pool buckets candidates by this value and
// falls back to Equal to resolve collisions, the hash-consing pattern
// described for the expression pool.
func Hash(e Expression) uint64 {
	return e.hash()
}

func (c *Constant) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(KindConstant)})
	h.Write(c.operand.Value.Bytes())
	return h.Sum64()
}

func (c *Chain) hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(c.kind)})
	for _, p := range c.parts {
		if p.Sign < 0 {
			h.Write([]byte{0})
		} else {
			h.Write([]byte{1})
		}
		var buf [8]byte
		sub := p.Expr.hash()
		for i := range buf {
			buf[i] = byte(sub >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}
