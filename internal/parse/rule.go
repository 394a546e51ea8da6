package parse

// Kind selects how a Rule's children combine.
type Kind int

const (
	// And requires every child rule to match in sequence.
	And Kind = iota
	// Or matches the first child rule that succeeds.
	Or
	// Match consumes a fixed sequence of token labels directly, with no
	// child rules.
	Match
)

// Quantifier controls how many times a Rule is applied at its current
// position before its result is fixed.
type Quantifier int

const (
	Once Quantifier = iota
	ZeroOrMore
	OneOrMore
	ZeroOrOne
)

// Rule is one named entry in the grammar table. And/Or rules reference
// other rules by name in ChildNames (resolved at parse time through the
// registry, so mutually recursive rules need no forward declarations).
// Match rules instead list the token labels they must see, in order, in
// MatchLabels.
type Rule struct {
	Kind        Kind
	Quantifier  Quantifier
	ChildNames  []string
	MatchLabels []string
}
