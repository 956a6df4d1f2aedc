package main

import (
	"fmt"

	"github.com/fwojciec/richtext"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	b, err := readInput(deps, c.File)
	if err != nil {
		return err
	}

	md, err := deps.Renderer.Render(string(b))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richtext.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
