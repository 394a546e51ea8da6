package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidModuleDocument(t *testing.T) {
	result := Text(`mod demo

fn main() {
    let x = 1
    return x
}`, "module.dog", "module.dog")

	require.True(t, result.OK(), "%v", result.Err)
	assert.Equal(t, "module_document", result.Node.Label)
}

func TestCheckValidConfigDocument(t *testing.T) {
	result := Text(`config App {
    name: "demo",
    retries: 3
}`, "config.dog", "config.dog")

	require.True(t, result.OK(), "%v", result.Err)
	assert.Equal(t, "config_document", result.Node.Label)
}

func TestCheckLexFailure(t *testing.T) {
	result := Text("let x = @", "bad.dog", "bad.dog")
	require.False(t, result.OK())
	assert.Contains(t, result.Err.Error(), "bad.dog")
}

func TestCheckParseFailureTrailingTokens(t *testing.T) {
	result := Text("}}}", "bad.dog", "bad.dog")
	require.False(t, result.OK())
	assert.Contains(t, result.Err.Error(), "bad.dog")
}

func TestCheckEmptySourceFailsToParse(t *testing.T) {
	// An empty token stream has no "next" token at all, so document
	// itself (an Or over two And rules) cannot even attempt a match.
	result := Text("", "empty.dog", "empty.dog")
	require.False(t, result.OK())
}

func TestCheckNestedBlocksAndControlFlow(t *testing.T) {
	result := Text(`mod demo

fn classify(n: int) {
    if n {
        return n
    } otherwise {
        return 0
    }
}`, "nested.dog", "nested.dog")

	require.True(t, result.OK(), "%v", result.Err)
	modBody := result.Node.GetChild("mod_body")
	require.NotNil(t, modBody)
	decls := modBody.GetChild("mod_body_decls")
	require.NotNil(t, decls)
	assert.Len(t, decls.GetChildren("entry_or_function_decl"), 1)
}
