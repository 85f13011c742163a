package numbers

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/conwaylabs/countdown/internal/countdown/expr"
)

var allOps = [...]expr.Op{expr.Add, expr.Sub, expr.Mul, expr.Div}

// BuildPool runs the dynamic-programming enumeration: it builds, for
// every mass from 1 to len(operands), the set of canonical
// Expressions of that mass reachable from the input operands,
// returning the full mass-indexed pool.
func BuildPool(operands []expr.Operand) map[int][]expr.Expression {
	n := len(operands)
	pool := make(map[int][]expr.Expression, n)

	leaves := make([]expr.Expression, n)
	for i, o := range operands {
		leaves[i] = expr.NewConstant(o)
	}
	pool[1] = leaves

	for m := 2; m <= n; m++ {
		pool[m] = buildLayer(pool, m)
	}
	return pool
}

// buildLayer constructs pool[m] by fanning out the (m1, op) buckets
// of the DP recurrence across goroutines with errgroup, the way
// Tangerg's flow.Batch.runN fans work out over an index-preserving
// result slice before folding it back into one aggregate. Each bucket
// only reads pool[<m], so there is no shared mutable state between
// goroutines; the parent performs the hash-consing merge into pool[m]
// sequentially once every bucket has finished, which keeps the
// resulting set (and hence the eventual sorted output) independent of
// scheduling order.
func buildLayer(pool map[int][]expr.Expression, m int) []expr.Expression {
	type bucket struct {
		m1 int
		op expr.Op
	}
	var buckets []bucket
	for m1 := 1; m1 < m; m1++ {
		for _, op := range allOps {
			buckets = append(buckets, bucket{m1, op})
		}
	}

	localResults := make([][]expr.Expression, len(buckets))
	g := new(errgroup.Group)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))
	for i, b := range buckets {
		i, b := i, b
		g.Go(func() error {
			localResults[i] = combinePairs(pool[b.m1], pool[m-b.m1], b.op)
			return nil
		})
	}
	// combinePairs never fails; the error return exists only because
	// errgroup.Group.Go requires it.
	_ = g.Wait()

	layer := newSet()
	for _, r := range localResults {
		for _, e := range r {
			layer.insert(e)
		}
	}
	return layer.slice()
}



// combinePairs applies every candidate pair from pool1 x pool2 under
// op, keeping only the ones that pass the usefulness filter, the
// multiset-validity check, and combine to a positive integer (spec
// §4.2-§4.4).
func combinePairs(pool1, pool2 []expr.Expression, op expr.Op) []expr.Expression {
	var out []expr.Expression
	for _, e1 := range pool1 {
		for _, e2 := range pool2 {
			if !MightBeUseful(e1, e2, op) {
				continue
			}
			if !IsValid(e1, e2) {
				continue
			}
			combined, ok := expr.Combine(e1, e2, op)
			if !ok {
				continue
			}
			out = append(out, combined)
		}
	}
	return out
}
