package main

import (
	"fmt"

	"github.com/fwojciec/richtext"
)

// Run executes the diff command.
func (c *DiffCmd) Run(deps *Dependencies) error {
	oldContent, err := readContent(deps, c.Old)
	if err != nil {
		return err
	}
	newContent, err := readContent(deps, c.New)
	if err != nil {
		return err
	}

	prev := deps.Formatter.FormatEntry(oldContent)
	next := deps.Formatter.FormatEntry(newContent)
	if len(c.Fields) > 0 {
		prev = prev.Filter(c.Fields)
		next = next.Filter(c.Fields)
	}

	changes, err := richtext.Diff(prev, next, deps.Hasher)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richtext.ErrorMessage(err))
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintln(deps.Stdout, "No changes.")
		return nil
	}

	for _, change := range changes {
		fmt.Fprintf(deps.Stdout, "%-8s  %s\n", change.Kind, change.Field)
	}
	return nil
}
