package parse

import "github.com/doglang/dogc/internal/lex"

// Document matches the root "document" rule against stream from its
// current position. It returns the resulting tree and true on success, or
// false if the root rule fails to match. It does not check that every
// token was consumed; Parse does.
func Document(stream *lex.TokenStream) (*Node, bool) {
	return matchRuleByName("document", stream)
}

func matchRuleByName(name string, stream *lex.TokenStream) (*Node, bool) {
	rule := Rules().Lookup(name)
	return matchWith(name, rule, stream)
}

func matchWith(label string, rule *Rule, stream *lex.TokenStream) (*Node, bool) {
	switch rule.Quantifier {
	case Once:
		return singleMatchWith(label, rule, stream)

	case ZeroOrOne:
		if node, ok := singleMatchWith(label, rule, stream); ok {
			return &Node{Label: label, Children: []*Node{node}}, true
		}
		return &Node{Label: label}, true

	case ZeroOrMore:
		var children []*Node
		for {
			node, ok := singleMatchWith(label, rule, stream)
			if !ok {
				break
			}
			children = append(children, node)
		}
		return &Node{Label: label, Children: children}, true

	case OneOrMore:
		var children []*Node
		for {
			node, ok := singleMatchWith(label, rule, stream)
			if !ok {
				break
			}
			children = append(children, node)
		}
		if len(children) == 0 {
			return nil, false
		}
		return &Node{Label: label, Children: children}, true

	default:
		panic("parse: unknown quantifier")
	}
}

func singleMatchWith(label string, rule *Rule, stream *lex.TokenStream) (*Node, bool) {
	switch rule.Kind {
	case And:
		return andMatchWith(label, rule, stream)
	case Or:
		return orMatchWith(label, rule, stream)
	case Match:
		return labelMatchWith(label, rule, stream)
	default:
		panic("parse: unknown rule kind")
	}
}

// labelMatchWith consumes exactly len(rule.MatchLabels) tokens, requiring
// each one's Label to equal the corresponding entry. Any mismatch, or
// running out of tokens partway through, resets the stream to where this
// attempt started and fails.
func labelMatchWith(label string, rule *Rule, stream *lex.TokenStream) (*Node, bool) {
	if !stream.HasNext() {
		return nil, false
	}

	offset := stream.Offset()
	var tokens []lex.Token
	for _, wantLabel := range rule.MatchLabels {
		tok, ok := stream.Next()
		if !ok || tok.Label != wantLabel {
			stream.Reset(offset)
			return nil, false
		}
		tokens = append(tokens, tok)
	}

	return &Node{Label: label, Tokens: tokens}, true
}

// orMatchWith tries each child rule in order and returns the first one
// that succeeds, verbatim - its own label is preserved rather than being
// wrapped under this rule's label, so an Or rule is transparent in the
// resulting tree.
func orMatchWith(label string, rule *Rule, stream *lex.TokenStream) (*Node, bool) {
	if !stream.HasNext() {
		return nil, false
	}

	offset := stream.Offset()
	for _, childName := range rule.ChildNames {
		if node, ok := matchRuleByName(childName, stream); ok {
			return node, true
		}
	}

	stream.Reset(offset)
	return nil, false
}

// andMatchWith requires every child rule to match in sequence, wrapping
// them under a node labeled with this rule's own name. Any child failure
// resets the stream to where this attempt started.
func andMatchWith(label string, rule *Rule, stream *lex.TokenStream) (*Node, bool) {
	if !stream.HasNext() {
		return nil, false
	}

	offset := stream.Offset()
	var children []*Node
	for _, childName := range rule.ChildNames {
		node, ok := matchRuleByName(childName, stream)
		if !ok {
			stream.Reset(offset)
			return nil, false
		}
		children = append(children, node)
	}

	return &Node{Label: label, Children: children}, true
}
