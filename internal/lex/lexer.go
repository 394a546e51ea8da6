package lex

import (
	"strings"

	"github.com/doglang/dogc/internal/diag"
	"github.com/doglang/dogc/internal/source"
)

// Lex scans buf against the pattern registry and returns the resulting
// token stream, dropping every match whose pattern is marked skip. It
// fails on the first position where no pattern matches at all.
func Lex(buf *source.Buffer) (*TokenStream, error) {
	text := buf.Text
	patterns := Patterns().All()

	lineNumber := 1
	lineOffset := 1
	var tokens []Token

	offset := 0
	for offset < len(text) {
		label, value, length, skip, ok := findLongestMatch(patterns, text, offset)
		if !ok {
			return nil, unmatchedInputError(buf, text, offset, lineNumber, lineOffset)
		}

		if !skip {
			tokens = append(tokens, Token{
				Label:      label,
				Value:      value,
				Length:     length,
				LineNumber: lineNumber,
				LineOffset: lineOffset,
				FileName:   buf.FileName,
				FilePath:   buf.FilePath,
			})
		}

		if strings.ContainsRune(value, '\n') {
			lineNumber++
			lineOffset = 1
		} else {
			lineOffset += length
		}
		offset += length
	}

	return NewTokenStream(tokens), nil
}

// findLongestMatch tries every pattern at offset and returns the one that
// consumes the most runes. Patterns are tried in registration order, and
// ties go to whichever pattern was registered first (strict ">" below).
func findLongestMatch(patterns []Pattern, text []rune, offset int) (label, value string, length int, skip bool, ok bool) {
	bestLength := -1
	var best Pattern
	for _, p := range patterns {
		if l, matched := p.Matcher.MatchWith(text, offset); matched {
			if l > bestLength {
				bestLength = l
				best = p
			}
		}
	}
	if bestLength < 0 {
		return "", "", 0, false, false
	}
	return best.Label, string(text[offset : offset+bestLength]), bestLength, best.Skip, true
}

// unmatchedInputError builds a diagnostic previewing the unmatched input up
// to the next space or newline, whichever comes first.
func unmatchedInputError(buf *source.Buffer, text []rune, offset, lineNumber, lineOffset int) error {
	rest := text[offset:]
	restStr := string(rest)

	end := len(rest)
	if i := strings.IndexRune(restStr, ' '); i >= 0 && i < end {
		end = i
	}
	if j := strings.IndexRune(restStr, '\n'); j >= 0 && j < end {
		end = j
	}
	if end == 0 {
		end = 1
		if end > len(rest) {
			end = len(rest)
		}
	}

	preview := renderString(string(rest[:end]))

	return &diag.LexError{
		FileName:   buf.FileName,
		FilePath:   buf.FilePath,
		LineNumber: lineNumber,
		LineOffset: lineOffset,
		Preview:    preview,
	}
}

func renderString(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
