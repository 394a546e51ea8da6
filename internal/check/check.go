// Package check glues the lexer and parser into the single operation the
// CLI and HTTP front ends both call: turn source text into either a parse
// tree or a reported diagnostic.
package check

import (
	"log"

	"github.com/doglang/dogc/internal/lex"
	"github.com/doglang/dogc/internal/parse"
	"github.com/doglang/dogc/internal/source"
)

// Result is the outcome of checking one source file: exactly one of Node
// or Err is set.
type Result struct {
	FileName string
	FilePath string
	Node     *parse.Node
	Err      error
}

// OK reports whether the source lexed and parsed cleanly.
func (r Result) OK() bool {
	return r.Err == nil
}

// Source lexes and parses buf, logging progress the way the teacher's own
// library functions do (stdlib log, one line per stage).
func Source(buf *source.Buffer) Result {
	log.Printf("checking %s (%s)", buf.FileName, buf.FilePath)

	stream, err := lex.Lex(buf)
	if err != nil {
		log.Printf("lex failed for %s: %v", buf.FileName, err)
		return Result{FileName: buf.FileName, FilePath: buf.FilePath, Err: err}
	}

	node, err := parse.Parse(stream, buf.FileName, buf.FilePath)
	if err != nil {
		log.Printf("parse failed for %s: %v", buf.FileName, err)
		return Result{FileName: buf.FileName, FilePath: buf.FilePath, Err: err}
	}

	log.Printf("checked %s ok", buf.FileName)
	return Result{FileName: buf.FileName, FilePath: buf.FilePath, Node: node}
}

// File reads path from disk and checks it.
func File(path string) Result {
	buf, err := source.ReadFile(path)
	if err != nil {
		return Result{FileName: path, FilePath: path, Err: err}
	}
	return Source(buf)
}

// Text checks in-memory source text tagged with the given file name/path,
// used by dogserver where the source never touches disk.
func Text(text, fileName, filePath string) Result {
	return Source(source.New(text, fileName, filePath))
}
