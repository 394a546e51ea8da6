// Package fixtures loads a JSON manifest of small Dog programs used to
// exercise internal/check across many inputs at once, grounded on the
// teacher's own JSON-archive-loading shape (read a file, unmarshal a JSON
// array, report how many entries were loaded).
package fixtures

import (
	"encoding/json"
	"log"
	"os"
)

// Case is one entry in a manifest: a named source sample and whether it
// is expected to check cleanly.
type Case struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	WantValid bool   `json:"want_valid"`
}

// Load reads path and unmarshals it as a JSON array of Case values.
func Load(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cases []Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, err
	}

	log.Printf("loaded %d fixture cases from %s", len(cases), path)
	return cases, nil
}
