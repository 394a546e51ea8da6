package check

import "testing"

// TestCheckTableDriven exercises a table of inputs the way the teacher's
// own parser tests do: plain testing.T, a struct table, t.Run per case,
// t.Errorf on mismatch.
func TestCheckTableDriven(t *testing.T) {
	var inputs = []struct {
		source    string
		wantValid bool
	}{
		// Valid
		{"mod demo\n\nfn add(a: int, b: int) {\n    return a + b\n}", true},
		{"config App {\n    name: \"demo\"\n}", true},
		{"mod demo\n\nuse util::helpers as h\n\nfn run() {\n    return h\n}", true},

		// Invalid
		{"}}}", false},
		{"fn broken(a: int", false},
		{"let x = @", false},
	}

	for _, input := range inputs {
		t.Run(input.source, func(t *testing.T) {
			result := Text(input.source, "table.dog", "table.dog")

			if result.OK() != input.wantValid {
				t.Errorf("Text(%q): got ok=%v, want %v (err: %v)",
					input.source, result.OK(), input.wantValid, result.Err)
			}
		})
	}
}
