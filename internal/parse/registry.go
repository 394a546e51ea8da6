package parse

import (
	"fmt"
	"sync"
)

// Registry is the name-indexed grammar table. Rules reference each other
// by name rather than by direct pointer, which is what lets two rules
// refer to one another (mutual recursion) without either one needing to
// exist yet at registration time.
type Registry struct {
	rules map[string]*Rule
}

var (
	registryOnce sync.Once
	registry     *Registry
)

// Rules returns the single, lazily-built grammar registry.
func Rules() *Registry {
	registryOnce.Do(func() {
		registry = buildRuleRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	return &Registry{rules: make(map[string]*Rule)}
}

// set stores a rule under name, overwriting any earlier rule registered
// under the same name. Grammar tables recovered from a merge of multiple
// iterations can carry duplicate keys; the last write wins, matching how a
// plain map insert resolves the collision.
func (r *Registry) set(name string, rule *Rule) {
	r.rules[name] = rule
}

// Lookup returns the rule registered under name. A miss is a grammar bug:
// every ChildNames entry in the table must resolve to a defined rule, so
// a miss here can only mean the table itself is broken.
func (r *Registry) Lookup(name string) *Rule {
	rule, ok := r.rules[name]
	if !ok {
		panic(fmt.Sprintf("parse: rule not found: %s", name))
	}
	return rule
}
