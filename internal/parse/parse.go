package parse

import (
	"github.com/doglang/dogc/internal/diag"
	"github.com/doglang/dogc/internal/lex"
)

// Parse matches the full document grammar against stream and requires
// every token to be consumed. A document match that leaves tokens
// unconsumed, or that fails outright, is reported as a *diag.ParseError
// naming the furthest token reached.
func Parse(stream *lex.TokenStream, fileName, filePath string) (*Node, error) {
	if node, ok := Document(stream); ok {
		if !stream.HasNext() {
			return node, nil
		}
		return nil, parseError(stream, fileName, filePath)
	}
	return nil, parseError(stream, fileName, filePath)
}

func parseError(stream *lex.TokenStream, fileName, filePath string) error {
	tok, ok := stream.LastConsumed()
	if !ok {
		return &diag.ParseError{FileName: fileName, FilePath: filePath, LineNumber: 1, LineOffset: 1}
	}
	return &diag.ParseError{
		FileName:   fileName,
		FilePath:   filePath,
		LineNumber: tok.LineNumber,
		LineOffset: tok.LineOffset,
		Label:      tok.Label,
		Value:      tok.Value,
	}
}
