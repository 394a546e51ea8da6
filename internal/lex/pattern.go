package lex

import (
	"fmt"
	"strings"
)

// Matcher is a pure combinator over a rune buffer at an offset. It reports
// how many runes it consumed on success, or false on no match.
//
// ContainsAny and MinMatches are derived properties used by Seq to decide
// when bounded wildcard lookahead is required, without re-traversing the
// matcher tree on every call.
type Matcher interface {
	MatchWith(text []rune, offset int) (length int, ok bool)
	ContainsAny() bool
	MinMatches() int
	Render() string
}

// Text matches a literal run of code points exactly.
type Text struct {
	Value string
}

func (t Text) MatchWith(text []rune, offset int) (int, bool) {
	runes := []rune(t.Value)
	if offset+len(runes) > len(text) {
		return 0, false
	}
	for i, c := range runes {
		if text[offset+i] != c {
			return 0, false
		}
	}
	return len(runes), true
}

func (t Text) ContainsAny() bool { return false }
func (t Text) MinMatches() int   { return len([]rune(t.Value)) }
func (t Text) Render() string    { return "'" + strings.ReplaceAll(t.Value, "'", "\\'") + "'" }

// Range matches a single character between Lo and Hi inclusive, by
// code-point ordinal comparison.
type Range struct {
	Lo, Hi rune
}

func (r Range) MatchWith(text []rune, offset int) (int, bool) {
	if offset >= len(text) {
		return 0, false
	}
	c := text[offset]
	if c >= r.Lo && c <= r.Hi {
		return 1, true
	}
	return 0, false
}

func (r Range) ContainsAny() bool { return false }
func (r Range) MinMatches() int   { return 1 }
func (r Range) Render() string {
	if r.Lo == r.Hi {
		return "[" + renderChar(r.Lo) + "]"
	}
	return "[" + renderChar(r.Lo) + "-" + renderChar(r.Hi) + "]"
}

// Any matches exactly one remaining character, whatever it is.
type Any struct{}

func (Any) MatchWith(text []rune, offset int) (int, bool) {
	if offset < len(text) {
		return 1, true
	}
	return 0, false
}

func (Any) ContainsAny() bool { return true }
func (Any) MinMatches() int   { return 1 }
func (Any) Render() string    { return "." }

// Not is a fixed-width assertion: it matches K characters iff Inner fails
// to match at the current offset.
type Not struct {
	Inner Matcher
	K     int
}

func (n Not) MatchWith(text []rune, offset int) (int, bool) {
	if _, ok := n.Inner.MatchWith(text, offset); ok {
		return 0, false
	}
	return n.K, true
}

func (n Not) ContainsAny() bool { return n.Inner.ContainsAny() }
func (n Not) MinMatches() int   { return n.K }
func (n Not) Render() string    { return "!" + n.Inner.Render() }

// Alt matches the longest successful child at the same offset; it fails
// only if every child fails. An empty child set is a grammar bug.
type Alt struct {
	Children []Matcher
}

func (a Alt) MatchWith(text []rune, offset int) (int, bool) {
	if len(a.Children) == 0 {
		panic("lex: Alt requires at least one child")
	}
	matched := false
	best := 0
	for _, child := range a.Children {
		if length, ok := child.MatchWith(text, offset); ok {
			if !matched || length > best {
				best = length
				matched = true
			}
		}
	}
	return best, matched
}

func (a Alt) ContainsAny() bool {
	for _, child := range a.Children {
		if child.ContainsAny() {
			return true
		}
	}
	return false
}

func (a Alt) MinMatches() int {
	max := 0
	for _, child := range a.Children {
		if m := child.MinMatches(); m > max {
			max = m
		}
	}
	return max
}

func (a Alt) Render() string {
	if len(a.Children) == 1 {
		return a.Children[0].Render()
	}
	parts := make([]string, len(a.Children))
	for i, child := range a.Children {
		parts[i] = child.Render()
	}
	return "(" + strings.Join(parts, " || ") + ")"
}

// Seq matches children left-to-right. A child that contains a wildcard and
// is not the last child triggers bounded lookahead to the position where
// the following (necessarily non-wildcard) child first matches. An empty
// child set is a grammar bug.
type Seq struct {
	Children []Matcher
}

func (s Seq) MatchWith(text []rune, offset int) (int, bool) {
	if len(s.Children) == 0 {
		panic("lex: Seq requires at least one child")
	}
	count := 0
	last := len(s.Children) - 1
	i := 0
	for i < len(s.Children) {
		current := s.Children[i]
		currentOffset := offset + count

		if current.ContainsAny() && i < last {
			next := s.Children[i+1]
			if next.ContainsAny() {
				panic("lex: Seq cannot have two wildcard-containing children in a row")
			}

			futureStart := currentOffset + current.MinMatches()
			nextOffset := -1
			nextLength := 0
			for p := futureStart; p <= len(text); p++ {
				length, ok := next.MatchWith(text, p)
				if !ok {
					continue
				}
				if isEscaped(text, p) {
					// This occurrence is itself escaped (an odd run of
					// backslashes precedes it), so it's not a real
					// terminator - keep scanning for the next candidate.
					continue
				}
				nextOffset = p
				nextLength = length
				break
			}
			if nextOffset < 0 {
				return 0, false
			}

			between := text[currentOffset:nextOffset]
			length, ok := current.MatchWith(between, 0)
			if !ok || currentOffset+length > nextOffset {
				return 0, false
			}

			count += length
			count += nextLength
			i += 2
			continue
		}

		length, ok := current.MatchWith(text, currentOffset)
		if !ok {
			return 0, false
		}
		count += length
		i++
	}
	return count, true
}

func (s Seq) ContainsAny() bool {
	for _, child := range s.Children {
		if child.ContainsAny() {
			return true
		}
	}
	return false
}

func (s Seq) MinMatches() int {
	total := 0
	for _, child := range s.Children {
		total += child.MinMatches()
	}
	return total
}

func (s Seq) Render() string {
	if len(s.Children) == 1 {
		return s.Children[0].Render()
	}
	parts := make([]string, len(s.Children))
	for i, child := range s.Children {
		parts[i] = child.Render()
	}
	return "(" + strings.Join(parts, " && ") + ")"
}

// Quantifier is the repetition policy applied by Rep.
type Quantifier int

const (
	Once Quantifier = iota
	ZeroOrMore
	OneOrMore
	ZeroOrOne
)

// Rep wraps Inner with a repetition quantifier.
type Rep struct {
	Inner      Matcher
	Quantifier Quantifier
}

func (r Rep) MatchWith(text []rune, offset int) (int, bool) {
	first, ok := r.Inner.MatchWith(text, offset)
	switch r.Quantifier {
	case Once:
		return first, ok
	case ZeroOrOne:
		if !ok {
			return 0, true
		}
		return first, true
	case ZeroOrMore, OneOrMore:
		if !ok {
			if r.Quantifier == ZeroOrMore {
				return 0, true
			}
			return 0, false
		}
		total := first
		if total > 0 {
			for {
				next, ok := r.Inner.MatchWith(text, offset+total)
				if !ok || next == 0 {
					break
				}
				total += next
			}
		}
		return total, true
	default:
		panic(fmt.Sprintf("lex: unknown quantifier %d", r.Quantifier))
	}
}

func (r Rep) ContainsAny() bool { return r.Inner.ContainsAny() }

func (r Rep) MinMatches() int {
	switch r.Quantifier {
	case ZeroOrMore, ZeroOrOne:
		return 0
	default:
		return r.Inner.MinMatches()
	}
}

func (r Rep) Render() string {
	suffix := ""
	switch r.Quantifier {
	case ZeroOrMore:
		suffix = "*"
	case OneOrMore:
		suffix = "+"
	case ZeroOrOne:
		suffix = "?"
	}
	return r.Inner.Render() + suffix
}

// isEscaped reports whether the character at pos is preceded by an odd
// run of backslashes, the usual convention for "this delimiter is
// escaped, not a real terminator" used by quoted-string and SQL literal
// patterns.
func isEscaped(text []rune, pos int) bool {
	backslashes := 0
	for i := pos - 1; i >= 0 && text[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 1
}

func renderChar(c rune) string {
	switch c {
	case '\n':
		return "\\n"
	case '\r':
		return "\\r"
	case '\t':
		return "\\t"
	default:
		return string(c)
	}
}
