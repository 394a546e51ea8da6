// Command dogc is the Dog language front-end CLI: it exposes the lex/parse
// pipeline (internal/check) as a "check" subcommand, and reserves the rest
// of a real compiler driver's surface (compile, build, rebuild, release,
// test, clean, generate) as not-yet-implemented stubs.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/doglang/dogc/internal/check"
)

// handleCheck runs the lex/parse pipeline against the file named by the
// command's single positional argument and reports the outcome.
func handleCheck(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: dogc check <file>", 1)
	}

	result := check.File(path)
	if !result.OK() {
		return cli.Exit(fmt.Sprintf("%v", result.Err), 1)
	}

	fmt.Printf("%s: ok (%s)\n", path, result.Node.Label)
	return nil
}

// notImplemented builds an Action for a stage of the compiler driver that
// the front-end alone cannot carry out yet.
func notImplemented(name string) cli.ActionFunc {
	return func(c *cli.Context) error {
		return cli.Exit(fmt.Sprintf("%s: not implemented", name), 1)
	}
}

func buildCliApp() *cli.App {
	commands := []*cli.Command{
		{
			Name:      "check",
			Usage:     "Lex and parse a Dog source file, reporting the first diagnostic found",
			ArgsUsage: "<file>",
			Action:    handleCheck,
		},
		{
			Name:   "compile",
			Usage:  "Compile a Dog module to its target representation",
			Action: notImplemented("compile"),
		},
		{
			Name:   "build",
			Usage:  "Build the current Dog package",
			Action: notImplemented("build"),
		},
		{
			Name:   "rebuild",
			Usage:  "Rebuild the current Dog package from scratch",
			Action: notImplemented("rebuild"),
		},
		{
			Name:   "release",
			Usage:  "Build the current Dog package in release mode",
			Action: notImplemented("release"),
		},
		{
			Name:   "test",
			Usage:  "Run the current Dog package's tests",
			Action: notImplemented("test"),
		},
		{
			Name:   "clean",
			Usage:  "Remove build artifacts for the current Dog package",
			Action: notImplemented("clean"),
		},
		{
			Name:   "generate",
			Usage:  "Run code generation for the current Dog package",
			Action: notImplemented("generate"),
		},
	}

	return &cli.App{
		Name:     "dogc",
		Usage:    "Dog language compiler driver",
		Commands: commands,

		// Hand cli.Exit errors back from Run instead of letting the library
		// exit the process inside it; main reports them.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func main() {
	app := buildCliApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
