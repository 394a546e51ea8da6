package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempSource(t *testing.T, name, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCheckCommandAcceptsValidSource(t *testing.T) {
	path := writeTempSource(t, "valid.dog", "mod demo\n\nfn add(a: int, b: int) {\n    return a + b\n}")

	app := buildCliApp()
	err := app.Run([]string{"dogc", "check", path})
	assert.NoError(t, err)
}

func TestCheckCommandRejectsInvalidSource(t *testing.T) {
	path := writeTempSource(t, "invalid.dog", "}}}")

	app := buildCliApp()
	err := app.Run([]string{"dogc", "check", path})
	require.Error(t, err)
}

func TestCheckCommandRequiresAFileArgument(t *testing.T) {
	app := buildCliApp()
	err := app.Run([]string{"dogc", "check"})
	require.Error(t, err)
}

func TestStubCommandsReportNotImplemented(t *testing.T) {
	for _, name := range []string{"compile", "build", "rebuild", "release", "test", "clean", "generate"} {
		app := buildCliApp()
		err := app.Run([]string{"dogc", name})
		require.Error(t, err, "%s should not be implemented yet", name)
	}
}
