package numbers

import "github.com/conwaylabs/countdown/internal/countdown/expr"

// set is a hash-consed collection of canonical Expressions: inserting
// an Expression equal (per expr.Equal) to one already present is a
// no-op, which is how the pool discards duplicates.
type set struct {
	buckets map[uint64][]expr.Expression
}

func newSet() *set {
	return &set{buckets: make(map[uint64][]expr.Expression)}
}

func (s *set) insert(e expr.Expression) bool {
	h := expr.Hash(e)
	for _, existing := range s.buckets[h] {
		if expr.Equal(existing, e) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], e)
	return true
}

func (s *set) slice() []expr.Expression {
	out := make([]expr.Expression, 0, len(s.buckets))
	for _, bucket := range s.buckets {
		out = append(out, bucket...)
	}
	return out
}
