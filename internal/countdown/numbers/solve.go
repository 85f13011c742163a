package numbers

import (
	"math/big"
	"sort"

	"github.com/conwaylabs/countdown/internal/countdown/expr"
)

// Result is one printable line of the numbers solver's output.
type Result struct {
	Value *big.Int
	Text  string
}

// Solve enumerates every canonical Expression reachable from the
// given operand values, sorts them by distance to target, and
// returns at most maxResults of them.
func Solve(target *big.Int, operandValues []*big.Int, maxResults int) []Result {
	operands := make([]expr.Operand, len(operandValues))
	for i, v := range operandValues {
		operands[i] = expr.Operand{Value: v, Position: i}
	}

	pool := BuildPool(operands)

	var all []expr.Expression
	for _, layer := range pool {
		all = append(all, layer...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return outputLess(all[i], all[j], target)
	})

	if maxResults > len(all) {
		maxResults = len(all)
	}
	results := make([]Result, maxResults)
	for i := 0; i < maxResults; i++ {
		results[i] = Result{Value: all[i].Value(), Text: all[i].String()}
	}
	return results
}
