package lex

import "sync"

// Pattern pairs a named Matcher with whether its matches are discarded
// (whitespace, comments) rather than surfaced as tokens.
type Pattern struct {
	Label   string
	Matcher Matcher
	Skip    bool
}

// Registry is the ordered list of patterns the lexer tries at each offset.
// Order matters only for Alt-style tie-breaking at the registry level: when
// two patterns match the same length at the same offset, the first one
// registered wins, matching the longest-match-first-registered-wins rule
// used throughout the grammar.
type Registry struct {
	patterns []Pattern
}

var (
	registryOnce sync.Once
	registry     *Registry
)

// Patterns returns the single, lazily-built pattern registry. It is safe
// for concurrent use: the underlying build runs exactly once regardless of
// how many goroutines call Patterns concurrently.
func Patterns() *Registry {
	registryOnce.Do(func() {
		registry = buildPatternRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) add(label string, m Matcher, skip bool) {
	r.patterns = append(r.patterns, Pattern{Label: label, Matcher: m, Skip: skip})
}

// All returns the patterns in registration order.
func (r *Registry) All() []Pattern {
	return r.patterns
}
