package model

import "testing"

func TestPlaylistDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		playlist Playlist
		expected string
	}{
		{"normal", Playlist{Name: "Road Trip", TracksTotal: 42}, "Road Trip (42)"},
		{"empty playlist", Playlist{Name: "New", TracksTotal: 0}, "New (0)"},
		{"unnamed", Playlist{TracksTotal: 3}, "Unnamed (3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.playlist.DisplayName()
			if got != tt.expected {
				t.Errorf("DisplayName() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestPlaylistTrackDisplayName(t *testing.T) {
	full := PlaylistTrack{Name: "So What", Artists: "Miles Davis"}
	if full.DisplayName() != "Miles Davis — So What" {
		t.Errorf("Unexpected display name: %q", full.DisplayName())
	}

	noArtists := PlaylistTrack{Name: "Untitled"}
	if noArtists.DisplayName() != "Untitled" {
		t.Errorf("Unexpected display name: %q", noArtists.DisplayName())
	}
}
