package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// maxBodyBytes bounds how much of a response is read; feeds larger than
// this are almost certainly not feeds.
const maxBodyBytes = 10 << 20

// Fetcher downloads every configured source concurrently and merges
// successful results into the store. One source failing, hanging, or
// serving garbage never affects the others; the render loop only ever
// observes the store and the remaining counter.
type Fetcher struct {
	store     *Store
	client    *http.Client
	userAgent string

	remaining atomic.Int32
	failed    atomic.Int32
}

func NewFetcher(store *Store, client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{
		store:     store,
		client:    client,
		userAgent: userAgent,
	}
}

// Fetch launches one goroutine per source and returns immediately.
// Each source decrements the remaining counter exactly once, on success
// or on failure, so Loading reports false exactly when every source has
// settled. An empty source list starts nothing.
func (f *Fetcher) Fetch(ctx context.Context, sourceURLs []string) {
	f.remaining.Store(int32(len(sourceURLs)))

	for _, sourceURL := range sourceURLs {
		go func(sourceURL string) {
			defer f.remaining.Add(-1)

			if err := f.fetchOne(ctx, sourceURL); err != nil {
				f.failed.Add(1)
				log.Printf("feed: fetch %s: %v", sourceURL, err)
			}
		}(sourceURL)
	}
}

func (f *Fetcher) fetchOne(ctx context.Context, sourceURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	entries, err := Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	f.store.Merge(entries)
	return nil
}

// Loading reports whether any source has yet to settle.
func (f *Fetcher) Loading() bool {
	return f.remaining.Load() > 0
}

// Remaining returns how many sources have not settled yet.
func (f *Fetcher) Remaining() int {
	return int(f.remaining.Load())
}

// FailedSources returns how many sources settled with an error.
func (f *Fetcher) FailedSources() int {
	return int(f.failed.Load())
}
