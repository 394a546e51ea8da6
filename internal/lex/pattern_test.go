package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextMatcher(t *testing.T) {
	m := Text{"app"}
	length, ok := m.MatchWith([]rune("app main() {}"), 0)
	require.True(t, ok)
	assert.Equal(t, 3, length)

	_, ok = m.MatchWith([]rune("application"), 0)
	assert.True(t, ok, "text match is a prefix match, not an exact-length match")
}

func TestAltPicksLongestChild(t *testing.T) {
	m := Alt{Children: []Matcher{
		Text{"a"},
		Text{"app"},
	}}
	length, ok := m.MatchWith([]rune("app"), 0)
	require.True(t, ok)
	assert.Equal(t, 3, length)
}

func TestAltPanicsOnNoChildren(t *testing.T) {
	assert.Panics(t, func() {
		Alt{}.MatchWith([]rune("x"), 0)
	})
}

func TestSeqPanicsOnNoChildren(t *testing.T) {
	assert.Panics(t, func() {
		Seq{}.MatchWith([]rune("x"), 0)
	})
}

func TestSeqPanicsOnAdjacentWildcards(t *testing.T) {
	m := Seq{Children: []Matcher{Any{}, Any{}, Text{"z"}}}
	assert.Panics(t, func() {
		m.MatchWith([]rune("abz"), 0)
	})
}

func TestSeqBoundedLookahead(t *testing.T) {
	// Matches the shape of the comment pattern: "//" then any run of
	// characters, bounded by the next literal newline.
	m := Seq{Children: []Matcher{
		Text{"//"},
		Rep{Inner: Any{}, Quantifier: ZeroOrMore},
		Range{'\n', '\n'},
	}}

	length, ok := m.MatchWith([]rune("// a comment\nlet x = 1"), 0)
	require.True(t, ok)
	assert.Equal(t, len("// a comment\n"), length)
}

func TestSeqBoundedLookaheadSkipsEscapedDelimiter(t *testing.T) {
	m := quotedStringPattern()

	length, ok := m.MatchWith([]rune(`"hi \"there\"" more text`), 0)
	require.True(t, ok)
	assert.Equal(t, len(`"hi \"there\""`), length)
}

func TestSeqFailsWhenBoundNeverFound(t *testing.T) {
	m := Seq{Children: []Matcher{
		Text{"//"},
		Rep{Inner: Any{}, Quantifier: ZeroOrMore},
		Range{'\n', '\n'},
	}}
	_, ok := m.MatchWith([]rune("// unterminated comment"), 0)
	assert.False(t, ok)
}

func TestRepQuantifiers(t *testing.T) {
	digit := Range{'0', '9'}

	t.Run("ZeroOrMore matches empty", func(t *testing.T) {
		length, ok := Rep{Inner: digit, Quantifier: ZeroOrMore}.MatchWith([]rune("abc"), 0)
		require.True(t, ok)
		assert.Equal(t, 0, length)
	})

	t.Run("OneOrMore requires at least one", func(t *testing.T) {
		_, ok := Rep{Inner: digit, Quantifier: OneOrMore}.MatchWith([]rune("abc"), 0)
		assert.False(t, ok)
	})

	t.Run("OneOrMore consumes a run", func(t *testing.T) {
		length, ok := Rep{Inner: digit, Quantifier: OneOrMore}.MatchWith([]rune("123abc"), 0)
		require.True(t, ok)
		assert.Equal(t, 3, length)
	})

	t.Run("ZeroOrOne never fails", func(t *testing.T) {
		length, ok := Rep{Inner: digit, Quantifier: ZeroOrOne}.MatchWith([]rune("abc"), 0)
		require.True(t, ok)
		assert.Equal(t, 0, length)
	})
}

func TestMinMatches(t *testing.T) {
	assert.Equal(t, 3, Text{"abc"}.MinMatches())
	assert.Equal(t, 1, Range{'a', 'z'}.MinMatches())
	assert.Equal(t, 1, Any{}.MinMatches())
	assert.Equal(t, 0, Rep{Inner: Text{"x"}, Quantifier: ZeroOrMore}.MinMatches())
	assert.Equal(t, 2, Rep{Inner: Text{"xy"}, Quantifier: OneOrMore}.MinMatches())
}

func TestContainsAny(t *testing.T) {
	assert.False(t, Text{"a"}.ContainsAny())
	assert.True(t, Any{}.ContainsAny())
	assert.True(t, Seq{Children: []Matcher{Text{"a"}, Any{}}}.ContainsAny())
	assert.True(t, Rep{Inner: Any{}, Quantifier: ZeroOrMore}.ContainsAny())
}
