package expr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v int64, pos int) *Constant {
	return NewConstant(Operand{Value: big.NewInt(v), Position: pos})
}

func TestConstant(t *testing.T) {
	c := constant(70, 0)
	assert.Equal(t, KindConstant, c.Kind())
	assert.Equal(t, 1, c.Mass())
	assert.Equal(t, 0, c.Depth())
	assert.Equal(t, "70", c.String())
	assert.Equal(t, int64(70), c.Value().Int64())
}

func TestCombineAdditionCanonicalOrder(t *testing.T) {
	a := constant(10, 0)
	b := constant(7, 1)

	sum, ok := Combine(a, b, Add)
	require.True(t, ok)
	assert.Equal(t, int64(17), sum.Value().Int64())
	assert.Equal(t, "10 + 7", sum.String())
	assert.Equal(t, KindAdditive, sum.Kind())

	// Commuted inputs collapse to the same canonical expression.
	sumCommuted, ok := Combine(b, a, Add)
	require.True(t, ok)
	assert.True(t, Equal(sum, sumCommuted))
	assert.Equal(t, Hash(sum), Hash(sumCommuted))
}

func TestCombineSubtractionRejectsNonPositive(t *testing.T) {
	small := constant(3, 0)
	big_ := constant(10, 1)

	_, ok := Combine(small, big_, Sub)
	assert.False(t, ok, "3 - 10 is not positive and must be rejected")

	diff, ok := Combine(big_, small, Sub)
	require.True(t, ok)
	assert.Equal(t, int64(7), diff.Value().Int64())
	assert.Equal(t, "10 - 3", diff.String())
}

func TestCombineDivisionRejectsNonIntegerQuotient(t *testing.T) {
	ten := constant(10, 0)
	seven := constant(7, 1)

	_, ok := Combine(ten, seven, Div)
	assert.False(t, ok, "10 / 7 is not an integer and must be rejected")
}

func TestCombineDivisionExact(t *testing.T) {
	ten := constant(10, 0)
	two := constant(2, 1)

	quot, ok := Combine(ten, two, Div)
	require.True(t, ok)
	assert.Equal(t, int64(5), quot.Value().Int64())
	assert.Equal(t, "10 / 2", quot.String())
}

func TestFlatteningAssociativity(t *testing.T) {
	a := constant(10000, 0)
	b := constant(20, 1)
	c := constant(3, 2)

	ab, ok := Combine(a, b, Add)
	require.True(t, ok)
	abc1, ok := Combine(ab, c, Add)
	require.True(t, ok)

	bc, ok := Combine(b, c, Add)
	require.True(t, ok)
	abc2, ok := Combine(a, bc, Add)
	require.True(t, ok)

	require.True(t, Equal(abc1, abc2), "(a+b)+c must canonicalize the same as a+(b+c)")
	for _, p := range abc1.Parts() {
		assert.NotEqual(t, KindAdditive, p.Expr.Kind(), "additive chain must not nest an additive part")
	}
}

func TestMultiplicativeWrapsNestedAdditiveChain(t *testing.T) {
	a := constant(10000, 0)
	b := constant(20, 1)
	c := constant(3, 2)

	sum, ok := Combine(b, c, Add) // 20 + 3
	require.True(t, ok)

	product, ok := Combine(a, sum, Mul)
	require.True(t, ok)
	assert.Equal(t, int64(230000), product.Value().Int64())
	assert.Equal(t, "10000 * (20 + 3)", product.String())
}

func TestMultiplicativeChainDoesNotNestMultiplicative(t *testing.T) {
	a := constant(2, 0)
	b := constant(3, 1)
	c := constant(4, 2)

	ab, ok := Combine(b, a, Mul) // 3 * 2
	require.True(t, ok)
	abc, ok := Combine(ab, c, Mul)
	require.True(t, ok)

	for _, p := range abc.Parts() {
		assert.NotEqual(t, KindMultiplicative, p.Expr.Kind())
	}
	assert.Equal(t, int64(24), abc.Value().Int64())
}

func TestRankIsTotalAndTerminates(t *testing.T) {
	a := constant(2, 0)
	b := constant(3, 1)
	c := constant(4, 2)

	ab, _ := Combine(a, b, Mul)
	ac, _ := Combine(a, c, Add)

	// Two structurally different expressions still produce a
	// consistent, terminating Less/Compare.
	abFirst := ab.Rank().Less(ac.Rank())
	acFirst := ac.Rank().Less(ab.Rank())
	assert.NotEqual(t, abFirst, acFirst, "exactly one of two distinct ranks sorts first")
	assert.Equal(t, 0, ab.Rank().Compare(ab.Rank()))
}
