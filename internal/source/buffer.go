// Package source decodes a Dog source file into a rune buffer that the
// lexer scans by absolute offset.
package source

import "os"

const unknown = "unknown"

// Buffer is an ordered sequence of code points decoded from a source file
// once, together with the file name and path used to annotate tokens.
type Buffer struct {
	Text     []rune
	FileName string
	FilePath string
}

// New builds a Buffer directly from in-memory text, tagging it with the
// given file name and path (either may be empty, in which case "unknown"
// is reported in diagnostics).
func New(text, fileName, filePath string) *Buffer {
	if fileName == "" {
		fileName = unknown
	}
	if filePath == "" {
		filePath = unknown
	}
	return &Buffer{
		Text:     []rune(text),
		FileName: fileName,
		FilePath: filePath,
	}
}

// ReadFile reads the full contents of path into memory and decodes it as a
// Buffer. The buffer owns an independent copy of the text; the underlying
// file is not kept open past this call.
func ReadFile(path string) (*Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(string(raw), path, path), nil
}
