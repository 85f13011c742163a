package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise(t *testing.T) {
	assert.Equal(t, "ABC", Normalise("abc"))
	assert.Equal(t, "HERPDERP", Normalise("HeRpdERP"))
	assert.Equal(t, "WHITESPACE", Normalise(" whitespace\t"))
}

func TestNormaliseIdempotent(t *testing.T) {
	for _, s := range []string{"abc", " RADAR\n", "Qwerty"} {
		once := Normalise(s)
		assert.Equal(t, once, Normalise(once))
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("A", "A"))
	assert.True(t, IsValid("A", "AA"))
	assert.True(t, IsValid("ABC", "AABBCCDD"))
	assert.True(t, IsValid("ABBCCCDDDD", "QWERTYDDDDCCCBBAA"))
	assert.True(t, IsValid("RADAR", "RADAR"))
	assert.False(t, IsValid("A", "X"))
	assert.False(t, IsValid("AA", "A"))
	assert.False(t, IsValid("RADAR", "DARAD"))
}

func TestSolveOrdersByDescendingLengthStably(t *testing.T) {
	words := []string{"cats", "tacs", "cat", "act", "at", "a"}
	results := Solve("CATS", words, 10)

	var got []string
	for _, r := range results {
		got = append(got, r.Word)
	}
	// "CATS" and "TACS" (both length 4) keep their input order;
	// "CAT" and "ACT" (both length 3) keep theirs.
	assert.Equal(t, []string{"CATS", "TACS", "CAT", "ACT", "AT", "A"}, got)
}

func TestSolveTruncatesToMaxResults(t *testing.T) {
	results := Solve("CATS", []string{"cat", "at", "a", "ant"}, 2)
	assert.Len(t, results, 2)
}

func TestSolveRejectsInvalidWords(t *testing.T) {
	results := Solve("RADAR", []string{"radar", "darad"}, 10)
	require := assert.New(t)
	require.Len(results, 1)
	require.Equal("RADAR", results[0].Word)
}
