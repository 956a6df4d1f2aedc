package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/goquery"
	"github.com/fwojciec/richtext/htmltomarkdown"
	"github.com/fwojciec/richtext/readability"
	richslog "github.com/fwojciec/richtext/slog"
	"github.com/fwojciec/richtext/trafilatura"
	"github.com/fwojciec/richtext/xxhash"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for commands reading from standard input. Set before calling Run().
	Stdin io.Reader

	// Optional services replacing the ones built from flags.
	Fetcher   richtext.Fetcher
	Extractor richtext.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,

		Fetcher: m.Fetcher,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("richtext"),
		kong.Description("Convert HTML content into CMS rich-text entries"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'richtext --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services shared by all commands
	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Converter = richslog.NewLoggingConverter(goquery.NewConverter(), deps.Logger)
	deps.Formatter = richtext.NewFormatter(deps.Converter, richtext.WithLocale(cli.Locale))
	deps.Extractor = m.Extractor
	if deps.Extractor == nil {
		deps.Extractor = newExtractor(cli.Convert.Extractor)
	}
	deps.Renderer = htmltomarkdown.NewRenderer()
	deps.Hasher = xxhash.NewHasher()

	return kongCtx.Run(deps)
}

// newLogger returns a logger writing to w when verbose is set and a
// discarding logger otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newExtractor returns the content extractor with the given name.
func newExtractor(name string) richtext.Extractor {
	if name == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}
