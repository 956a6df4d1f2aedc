package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/richtext"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Converter richtext.Converter
	Formatter *richtext.Formatter
	Extractor richtext.Extractor
	Renderer  richtext.Renderer
	Hasher    richtext.Hasher

	// Fetcher overrides the HTTP fetcher built by the entry command.
	// Set from Main.Fetcher.
	Fetcher richtext.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Locale  string `default:"en-US" env:"RICHTEXT_LOCALE" help:"Locale key field values are stored under"`
	Verbose bool   `short:"v" help:"Log progress to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert HTML to a rich-text document"`
	Entry   EntryCmd   `cmd:"" help:"Format content records as CMS entry fields"`
	Preview PreviewCmd `cmd:"" help:"Render HTML as Markdown"`
	Diff    DiffCmd    `cmd:"" help:"Show fields that differ between two content records"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	File      string `arg:"" optional:"" help:"HTML file to convert (default: stdin)"`
	Extract   bool   `short:"x" help:"Extract the main content of a full web page first"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Content extractor used with --extract (trafilatura, readability)"`
}

// EntryCmd is the "entry" subcommand.
type EntryCmd struct {
	URLs        []string      `arg:"" optional:"" name:"url" help:"URLs of JSON records to fetch"`
	Files       []string      `short:"f" name:"file" help:"JSON record file to read (repeatable)"`
	Fields      []string      `short:"F" name:"fields" help:"Keep only these fields (comma-separated)"`
	Out         string        `short:"o" help:"Write entries as JSON files into this directory"`
	Retries     int           `default:"5" env:"RICHTEXT_RETRIES" help:"Retries for 503 responses"`
	RetryDelay  time.Duration `default:"1s" help:"Delay before the first retry, doubled for each further retry"`
	Timeout     time.Duration `short:"t" default:"10s" env:"RICHTEXT_TIMEOUT" help:"Timeout per request"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64       `default:"5" help:"Maximum requests per second"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	File string `arg:"" optional:"" help:"HTML file to render (default: stdin)"`
}

// DiffCmd is the "diff" subcommand.
type DiffCmd struct {
	Old    string   `arg:"" help:"JSON record file with the current content"`
	New    string   `arg:"" help:"JSON record file with the updated content"`
	Fields []string `short:"F" name:"fields" help:"Compare only these fields (comma-separated)"`
}

// readInput returns the contents of path, or of stdin when path is empty or "-".
func readInput(deps *Dependencies, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(deps.Stdin)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return b, nil
}

// readContent reads a JSON record file as Content.
func readContent(deps *Dependencies, path string) (richtext.Content, error) {
	b, err := readInput(deps, path)
	if err != nil {
		return nil, err
	}
	content, err := richtext.ContentFromJSON(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return content, nil
}
