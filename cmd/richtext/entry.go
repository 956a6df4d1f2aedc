package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/richtext"
	"github.com/fwojciec/richtext/fs"
	richhttp "github.com/fwojciec/richtext/http"
	richslog "github.com/fwojciec/richtext/slog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// record is a source content record and the name it is reported under.
type record struct {
	name    string
	content richtext.Content
}

// Run executes the entry command. Every record that could be read is
// formatted and written; failures are collected and returned together.
func (c *EntryCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 && len(c.Files) == 0 {
		return fmt.Errorf("no records given: pass record URLs or --file")
	}

	var (
		errs   *multierror.Error
		failed int
	)

	records := make([]*record, 0, len(c.Files)+len(c.URLs))
	for _, path := range c.Files {
		content, err := readContent(deps, path)
		if err != nil {
			errs = multierror.Append(errs, err)
			failed++
			continue
		}
		records = append(records, &record{name: fileRecordName(path), content: content})
	}

	fetched, err := c.fetchAll(deps)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	failed += len(c.URLs) - len(fetched)
	records = append(records, fetched...)

	var writer richtext.EntryWriter
	if c.Out != "" {
		writer = fs.NewWriter(c.Out)
	}

	for _, r := range records {
		entry := deps.Formatter.FormatEntry(r.content)
		if len(c.Fields) > 0 {
			entry = entry.Filter(c.Fields)
		}

		if writer == nil {
			if err := writeJSON(deps, entry); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("print %s: %w", r.name, err))
				failed++
			}
			continue
		}

		if err := writer.WriteEntry(deps.Ctx, r.name, entry); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("write %s: %w", r.name, err))
			failed++
			continue
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", r.name)
	}

	if err := errs.ErrorOrNil(); err != nil {
		fmt.Fprintf(deps.Stderr, "%d of %d records failed\n", failed, len(c.Files)+len(c.URLs))
		return err
	}
	return nil
}

// fileRecordName names a record read from path by its base name without
// extension, so entries from posts/hello.json are written as hello.json.
func fileRecordName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fetchAll fetches every URL concurrently and returns the records that were
// fetched, in argument order. URLs missing from the result failed; their
// errors are returned as one error.
func (c *EntryCmd) fetchAll(deps *Dependencies) ([]*record, error) {
	if len(c.URLs) == 0 {
		return nil, nil
	}

	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = richslog.NewLoggingFetcher(c.newFetcher(deps), deps.Logger)
	}

	limit := rate.Inf
	if c.Rate > 0 {
		limit = rate.Limit(c.Rate)
	}
	limiter := rate.NewLimiter(limit, 1)

	var (
		mu   sync.Mutex
		errs *multierror.Error
	)
	results := make([]*record, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(c.Concurrency, 1))
	for i, url := range c.URLs {
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			content, err := fetcher.FetchContent(ctx, url)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("fetch %s: %w", url, err))
				mu.Unlock()
				return nil
			}
			results[i] = &record{name: url, content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = multierror.Append(errs, err)
	}

	records := make([]*record, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, r)
		}
	}
	return records, errs.ErrorOrNil()
}

func (c *EntryCmd) newFetcher(deps *Dependencies) *richhttp.Fetcher {
	return richhttp.NewFetcher(
		richhttp.WithRetries(c.Retries),
		richhttp.WithTimeout(c.Timeout),
		richhttp.WithInitialInterval(c.RetryDelay),
		richhttp.WithRetryNotify(func(err error, wait time.Duration) {
			deps.Logger.Warn("retry", "err", err, "wait", wait)
		}),
	)
}
