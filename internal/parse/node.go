package parse

import (
	"strings"

	"github.com/doglang/dogc/internal/lex"
)

// Node is one node of a parse tree: either a leaf carrying the tokens
// consumed by a Match rule, or a branch carrying the child nodes produced
// by an And or Or rule. Label names the rule that produced the node.
type Node struct {
	Label    string
	Tokens   []lex.Token
	Children []*Node
}

// GetChildren returns every direct child whose Label equals name, in the
// order they were parsed.
func (n *Node) GetChildren(name string) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Label == name {
			result = append(result, child)
		}
	}
	return result
}

// GetChild returns the first direct child whose Label equals name, or nil
// if there is none.
func (n *Node) GetChild(name string) *Node {
	children := n.GetChildren(name)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// AsText reconstructs the source text spanned by this node: its own
// tokens' values, space-joined where a column gap implies whitespace, then
// each child's text in order. It returns "" for a node with neither tokens
// nor children.
func (n *Node) AsText() string {
	if len(n.Tokens) == 0 && len(n.Children) == 0 {
		return ""
	}

	var b strings.Builder
	lineNumber := 0
	lineOffset := 0
	for _, tok := range n.Tokens {
		if tok.LineNumber > lineNumber {
			lineNumber = tok.LineNumber
			lineOffset = tok.LineOffset
		} else if lineOffset < tok.LineOffset {
			b.WriteString(" ")
		}
		lineOffset = tok.LineOffset
		b.WriteString(tok.Value)
		lineOffset += tok.Length
	}
	for _, child := range n.Children {
		childText := child.AsText()
		if childText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(childText)
	}
	return b.String()
}
