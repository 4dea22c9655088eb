package ui

import (
	"io"
	"net/http"
	"sync"
	"time"
)

const artFetchTimeout = 10 * time.Second

// ArtFetcher downloads album art in the background. Fetches are keyed by URL:
// repeating the current URL is a no-op, and a response that arrives after the
// target URL moved on is discarded instead of overwriting newer art.
type ArtFetcher struct {
	httpClient *http.Client
	onArt      func(data []byte)

	mu         sync.Mutex
	pendingURL string
}

// NewArtFetcher creates a fetcher. onArt receives the image bytes off the UI
// thread; nil means "no art" and should clear the display.
func NewArtFetcher(onArt func(data []byte)) *ArtFetcher {
	return &ArtFetcher{
		httpClient: &http.Client{Timeout: artFetchTimeout},
		onArt:      onArt,
	}
}

// Fetch requests the art at url, or clears the art when url is empty.
func (f *ArtFetcher) Fetch(url string) {
	f.mu.Lock()
	if url == "" {
		f.pendingURL = ""
		f.mu.Unlock()
		f.onArt(nil)
		return
	}
	if url == f.pendingURL {
		f.mu.Unlock()
		return
	}
	f.pendingURL = url
	f.mu.Unlock()

	go f.download(url)
}

func (f *ArtFetcher) download(url string) {
	var data []byte
	resp, err := f.httpClient.Get(url)
	if err == nil {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			data, _ = io.ReadAll(resp.Body)
		}
	}

	f.mu.Lock()
	stale := f.pendingURL != url
	f.mu.Unlock()
	if stale {
		return
	}
	f.onArt(data)
}
