package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/richtext"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	b, err := readInput(deps, c.File)
	if err != nil {
		return err
	}
	html := string(b)

	if c.Extract {
		result, err := deps.Extractor.Extract(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", richtext.ErrorMessage(err))
			return err
		}
		html = result.ContentHTML
	}

	doc := deps.Converter.Convert(html)
	return writeJSON(deps, doc)
}

// writeJSON writes v to stdout as indented JSON.
func writeJSON(deps *Dependencies, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(deps.Stdout, string(out))
	return err
}
