package model

import (
	"fmt"
	"strings"
)

// Track is the narrowed now-playing item. Artists is a single display string
// (names joined with ", "); Album.Images is ordered by descending resolution.
// Tracks are immutable once fetched and identified by ID for change detection.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URI        string `json:"uri"`
	Artists    string `json:"artists"`
	DurationMs int    `json:"duration_ms"`
	Album      Album  `json:"album"`
}

// ArtURL returns the highest-resolution album art URL, or "" when none.
func (t *Track) ArtURL() string {
	if t == nil || len(t.Album.Images) == 0 {
		return ""
	}
	return t.Album.Images[0].URL
}

// Album carries the album name plus art images, largest first.
type Album struct {
	Name   string  `json:"name"`
	Images []Image `json:"images,omitempty"`
}

// Image is one album art rendition.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// JoinArtists joins artist names for display, skipping empties.
func JoinArtists(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders a millisecond offset as "mm:ss", or "--:--" when the
// value is missing or non-positive.
func FormatMs(ms int) string {
	if ms <= 0 {
		return "--:--"
	}
	seconds := ms / 1000
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
