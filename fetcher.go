package richtext

import "context"

// Fetcher retrieves source content records from a remote API.
type Fetcher interface {
	// FetchContent retrieves the JSON object at url as Content.
	// The context controls timeout and cancellation.
	FetchContent(ctx context.Context, url string) (Content, error)
}
