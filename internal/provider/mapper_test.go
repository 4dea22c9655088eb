package provider

import (
	"testing"

	"github.com/zmb3/spotify/v2"
)

func fullTrack(id, name string, artists ...string) spotify.FullTrack {
	simple := spotify.SimpleTrack{
		ID:       spotify.ID(id),
		Name:     name,
		URI:      spotify.URI("spotify:track:" + id),
		Duration: 215000,
	}
	for _, a := range artists {
		simple.Artists = append(simple.Artists, spotify.SimpleArtist{Name: a})
	}
	return spotify.FullTrack{
		SimpleTrack: simple,
		Album: spotify.SimpleAlbum{
			Name: "Kind of Blue",
			Images: []spotify.Image{
				{URL: "https://img/640", Height: 640, Width: 640},
				{URL: "https://img/300", Height: 300, Width: 300},
			},
		},
	}
}

func TestMapTrack(t *testing.T) {
	ft := fullTrack("4vLYewWIvqHfKtJDk8c8tq", "So What", "Miles Davis", "John Coltrane")

	got := mapTrack(&ft)
	if got == nil {
		t.Fatal("Expected non-nil track")
	}
	if got.ID != "4vLYewWIvqHfKtJDk8c8tq" {
		t.Errorf("Unexpected ID: %q", got.ID)
	}
	if got.URI != "spotify:track:4vLYewWIvqHfKtJDk8c8tq" {
		t.Errorf("Unexpected URI: %q", got.URI)
	}
	if got.Artists != "Miles Davis, John Coltrane" {
		t.Errorf("Expected joined artists, got %q", got.Artists)
	}
	if got.DurationMs != 215000 {
		t.Errorf("Expected duration 215000, got %d", got.DurationMs)
	}
	if got.Album.Name != "Kind of Blue" {
		t.Errorf("Unexpected album name: %q", got.Album.Name)
	}
	if len(got.Album.Images) != 2 || got.Album.Images[0].URL != "https://img/640" {
		t.Errorf("Expected images largest-first, got %+v", got.Album.Images)
	}

	if mapTrack(nil) != nil {
		t.Error("Expected nil for nil input")
	}
}

func TestMapPlayerState(t *testing.T) {
	if mapPlayerState(nil) != nil {
		t.Error("Expected nil for nil player state")
	}

	ft := fullTrack("t1", "So What", "Miles Davis")
	st := &spotify.PlayerState{
		Device: spotify.PlayerDevice{
			ID:     "d1",
			Name:   "Office Speaker",
			Type:   "Speaker",
			Active: true,
			Volume: 70,
		},
		ShuffleState: true,
		RepeatState:  "context",
		CurrentlyPlaying: spotify.CurrentlyPlaying{
			Playing:  true,
			Progress: 42000,
			Item:     &ft,
		},
	}

	got := mapPlayerState(st)
	if !got.IsPlaying {
		t.Error("Expected IsPlaying true")
	}
	if got.ProgressMs != 42000 {
		t.Errorf("Expected progress 42000, got %d", got.ProgressMs)
	}
	if got.Item == nil || got.Item.Name != "So What" {
		t.Errorf("Unexpected item: %+v", got.Item)
	}
	if got.Device == nil || !got.Device.IsActive || got.Device.VolumePercent != 70 {
		t.Errorf("Unexpected device: %+v", got.Device)
	}
	if !got.ShuffleState || got.RepeatState != "context" {
		t.Errorf("Expected shuffle/repeat carried over, got %+v", got)
	}
}

func TestMapPlayerStateNoDevice(t *testing.T) {
	got := mapPlayerState(&spotify.PlayerState{})
	if got.Device != nil {
		t.Errorf("Expected nil device when provider reports none, got %+v", got.Device)
	}
	if got.Item != nil {
		t.Errorf("Expected nil item when nothing playing, got %+v", got.Item)
	}
}

func TestMapPlaylists(t *testing.T) {
	playlists := []spotify.SimplePlaylist{
		{
			ID:           "p1",
			Name:         "Road Trip",
			Tracks:       spotify.PlaylistTracks{Total: 42},
			ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/playlist/p1"},
		},
		{ID: "p2", Name: "Empty"},
	}

	got := mapPlaylists(playlists)
	if len(got) != 2 {
		t.Fatalf("Expected 2 playlists, got %d", len(got))
	}
	if got[0].TracksTotal != 42 {
		t.Errorf("Expected 42 tracks, got %d", got[0].TracksTotal)
	}
	if got[0].ExternalURL != "https://open.spotify.com/playlist/p1" {
		t.Errorf("Unexpected external URL: %q", got[0].ExternalURL)
	}
	if got[1].TracksTotal != 0 || got[1].ExternalURL != "" {
		t.Errorf("Expected zero values for bare playlist, got %+v", got[1])
	}
}

func TestMapPlaylistItemsSkipsNonTracks(t *testing.T) {
	ft := fullTrack("t1", "So What", "Miles Davis")
	items := []spotify.PlaylistItem{
		{Track: spotify.PlaylistItemTrack{Track: &ft}},
		{Track: spotify.PlaylistItemTrack{}}, // episode or removed track
	}

	got := mapPlaylistItems(items)
	if len(got) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(got))
	}
	if got[0].DisplayName() != "Miles Davis — So What" {
		t.Errorf("Unexpected display name: %q", got[0].DisplayName())
	}
}

func TestMapQueue(t *testing.T) {
	tracks := []spotify.FullTrack{
		fullTrack("t1", "So What", "Miles Davis"),
		fullTrack("t2", "Freddie Freeloader", "Miles Davis"),
	}

	got := mapQueue(tracks)
	if len(got) != 2 {
		t.Fatalf("Expected 2 queue entries, got %d", len(got))
	}
	if got[0].URI != "spotify:track:t1" || got[1].Name != "Freddie Freeloader" {
		t.Errorf("Unexpected queue entries: %+v", got)
	}

	if len(mapQueue(nil)) != 0 {
		t.Error("Expected empty queue for nil input")
	}
}

func TestTrackURIToID(t *testing.T) {
	if trackURIToID("spotify:track:abc123") != spotify.ID("abc123") {
		t.Error("Expected URI prefix stripped")
	}
	if trackURIToID("abc123") != spotify.ID("abc123") {
		t.Error("Expected bare ID passed through")
	}
}

func TestPlaylistURI(t *testing.T) {
	if playlistURI("p1") != spotify.URI("spotify:playlist:p1") {
		t.Errorf("Unexpected playlist URI: %q", playlistURI("p1"))
	}
}
