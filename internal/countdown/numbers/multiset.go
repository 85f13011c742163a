package numbers

import "github.com/conwaylabs/countdown/internal/countdown/expr"

// IsValid reports whether combining e1 and e2 would use any input
// operand (identified by its position, not its value) more than
// once. Operands used on both sides are double-counted on purpose:
// each distinguishable input number may appear in at most one leaf of
// the combined expression.
func IsValid(e1, e2 expr.Expression) bool {
	seen := make(map[int]struct{}, e1.Mass()+e2.Mass())
	for _, o := range e1.Constants() {
		seen[o.Position] = struct{}{}
	}
	for _, o := range e2.Constants() {
		if _, dup := seen[o.Position]; dup {
			return false
		}
		seen[o.Position] = struct{}{}
	}
	return true
}
