package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doglang/dogc/internal/lex"
	"github.com/doglang/dogc/internal/source"
)

func lexCode(t *testing.T, code string) *lex.TokenStream {
	t.Helper()
	stream, err := lex.Lex(source.New(code, "test.dog", "test.dog"))
	require.NoError(t, err)
	return stream
}

func TestParseModuleDocument(t *testing.T) {
	code := `mod demo

use util::helpers as h

fn add(a: int, b: int) {
    return a + b
}`

	stream := lexCode(t, code)
	node, err := Parse(stream, "test.dog", "test.dog")
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "module_document", node.Label)

	modBody := node.GetChild("mod_body")
	require.NotNil(t, modBody)

	decls := modBody.GetChild("mod_body_decls")
	require.NotNil(t, decls)
	assert.Len(t, decls.GetChildren("entry_or_function_decl"), 1)
}

func TestParseConfigDocument(t *testing.T) {
	code := `config App {
    name: "demo",
    version: 1
}`

	stream := lexCode(t, code)
	node, err := Parse(stream, "test.dog", "test.dog")
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "config_document", node.Label)

	// config_document is And(OneOrMore): each repetition is its own
	// config_document node wrapping one config_decl.
	repeats := node.GetChildren("config_document")
	require.Len(t, repeats, 1)
	assert.Len(t, repeats[0].GetChildren("config_decl"), 1)
}

func TestParseFailsOnTrailingGarbage(t *testing.T) {
	stream := lexCode(t, "}}}")
	_, err := Parse(stream, "test.dog", "test.dog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.dog")
}

func TestParseFailsReportsFurthestToken(t *testing.T) {
	// Never-closed parameter list: the parser must give up after matching
	// as far as the last "int" before the missing close paren.
	stream := lexCode(t, "fn broken(a: int")
	_, err := Parse(stream, "test.dog", "test.dog")
	require.Error(t, err)

	perr, ok := err.(interface{ Error() string })
	require.True(t, ok)
	assert.Contains(t, perr.Error(), "test.dog")
	assert.Contains(t, perr.Error(), `_integer "int"`)
}

func TestParseEachTopLevelAlternativeTried(t *testing.T) {
	// document = config_document || module_document: a config block must
	// still be recognized when it is the very first thing in the file.
	stream := lexCode(t, `config A { x: 1 }`)
	node, err := Parse(stream, "test.dog", "test.dog")
	require.NoError(t, err)
	assert.Equal(t, "config_document", node.Label)
}

func TestNodeAsText(t *testing.T) {
	stream := lexCode(t, `config A { x: 1 }`)
	node, err := Parse(stream, "test.dog", "test.dog")
	require.NoError(t, err)

	repeat := node.GetChild("config_document")
	require.NotNil(t, repeat)
	decl := repeat.GetChild("config_decl")
	require.NotNil(t, decl)
	assert.NotEmpty(t, decl.AsText())
}
