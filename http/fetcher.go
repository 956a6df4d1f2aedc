// Package http provides an HTTP-based implementation of richtext.Fetcher
// for fetching source records from JSON APIs.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/richtext"
)

// Defaults for a Fetcher.
const (
	DefaultRetries         = 5
	DefaultFetchTimeout    = 10 * time.Second
	DefaultInitialInterval = 1 * time.Second
)

// Ensure Fetcher implements richtext.Fetcher at compile time.
var _ richtext.Fetcher = (*Fetcher)(nil)

// RetryNotifyFunc is called before each retry with the error that caused it
// and the delay before the next attempt.
type RetryNotifyFunc func(err error, wait time.Duration)

// Fetcher retrieves JSON documents over HTTP. Requests answered with
// 503 Service Unavailable are retried with exponential backoff; the delay
// before retry n (counting from zero) is InitialInterval * 2^n.
type Fetcher struct {
	client          *http.Client
	timeout         time.Duration
	retries         int
	initialInterval time.Duration
	notify          RetryNotifyFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetries sets how many times a 503 response is retried.
// Defaults to DefaultRetries (5). Zero disables retries.
func WithRetries(n int) Option {
	return func(f *Fetcher) {
		f.retries = max(n, 0)
	}
}

// WithInitialInterval sets the delay before the first retry.
// Defaults to DefaultInitialInterval (1s).
func WithInitialInterval(d time.Duration) Option {
	return func(f *Fetcher) {
		f.initialInterval = d
	}
}

// WithRetryNotify sets a function called before every retry.
func WithRetryNotify(fn RetryNotifyFunc) Option {
	return func(f *Fetcher) {
		f.notify = fn
	}
}

// WithHTTPClient sets the client used for requests. The client's timeout
// is overridden by the fetcher timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:         DefaultFetchTimeout,
		retries:         DefaultRetries,
		initialInterval: DefaultInitialInterval,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := &http.Client{}
	if f.client != nil {
		c := *f.client
		client = &c
	}
	client.Timeout = f.timeout
	f.client = client

	return f
}

// FetchJSON retrieves the JSON document at url and decodes it into generic
// values. Numbers are decoded as json.Number.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (any, error) {
	body, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, richtext.Errorf(richtext.EINVALID, "invalid JSON from %s: %v", url, err)
	}
	return v, nil
}

// FetchContent retrieves the JSON object at url as Content, keeping the
// order of its keys.
func (f *Fetcher) FetchContent(ctx context.Context, url string) (richtext.Content, error) {
	body, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return richtext.ContentFromJSON(body)
}

// fetch performs a GET with the retry policy and returns the response body.
func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	operation := func() error {
		b, err := f.get(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	var notify backoff.Notify
	if f.notify != nil {
		notify = backoff.Notify(f.notify)
	}

	if err := backoff.RetryNotify(operation, f.backOff(ctx), notify); err != nil {
		return nil, err
	}
	return body, nil
}

// backOff returns the retry policy: doubling delays with no jitter, bounded
// by the retry budget and the context.
func (f *Fetcher) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.initialInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = f.initialInterval << min(f.retries, 20)
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(f.retries)), ctx)
}

// get performs a single GET. Only 503 responses are returned as retryable
// errors; everything else is wrapped with backoff.Permanent.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(richtext.Errorf(richtext.EINVALID, "invalid request for %s: %v", url, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return nil, richtext.Errorf(richtext.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(richtext.Errorf(richtext.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url))
	case resp.StatusCode >= 500:
		return nil, backoff.Permanent(richtext.Errorf(richtext.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, backoff.Permanent(richtext.Errorf(richtext.EINVALID, "HTTP %d for %s", resp.StatusCode, url))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return body, nil
}
