package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tapedeck/tapedeck/internal/model"
)

func TestPlaybackStateNothingPlaying(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playback/state" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{}"))
	}))
	defer ts.Close()

	state, err := NewClient(ts.URL).PlaybackState(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state != nil {
		t.Errorf("Expected nil state for empty body, got %+v", state)
	}
}

func TestPlaybackStateDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.PlaybackState{
			IsPlaying:  true,
			ProgressMs: 12000,
			Item:       &model.Track{ID: "t1", Name: "Giant Steps", DurationMs: 287000},
		})
	}))
	defer ts.Close()

	state, err := NewClient(ts.URL).PlaybackState(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state == nil || !state.IsPlaying || state.Item.Name != "Giant Steps" {
		t.Errorf("Unexpected state: %+v", state)
	}
}

func TestPostCarriesBody(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/playback/seek" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		json.NewEncoder(w).Encode(model.StatusOK)
	}))
	defer ts.Close()

	if err := NewClient(ts.URL).Seek(context.Background(), 42000); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got["position_ms"] != float64(42000) {
		t.Errorf("Expected position_ms 42000, got %v", got["position_ms"])
	}
}

func TestErrorDetailUnwrapped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.APIError{Detail: "rate limited"})
	}))
	defer ts.Close()

	err := NewClient(ts.URL).Play(context.Background())
	if err == nil {
		t.Fatal("Expected an error")
	}
	if err.Error() != "rate limited" {
		t.Errorf("Expected the detail message, got %q", err.Error())
	}
}

func TestLimitationDistinctFromFailure(t *testing.T) {
	limitation := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(model.APIError{Detail: "clearing the queue: not supported by the provider"})
	}))
	defer limitation.Close()

	err := NewClient(limitation.URL).ClearQueue(context.Background())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported for a 400, got %v", err)
	}

	failure := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.APIError{Detail: "rate limited"})
	}))
	defer failure.Close()

	err = NewClient(failure.URL).ClearQueue(context.Background())
	if err == nil {
		t.Fatal("Expected an error")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Errorf("A 500 must not read as a limitation, got %v", err)
	}
}

func TestBackendDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	_, err := NewClient(ts.URL).PlaybackState(context.Background())
	if !errors.Is(err, ErrBackendDown) {
		t.Errorf("Expected ErrBackendDown, got %v", err)
	}
}

func TestPlaylistTracksPath(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlists/p7/tracks" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(model.TrackList{Tracks: []model.PlaylistTrack{{ID: "t1", Name: "Naima"}}})
	}))
	defer ts.Close()

	tracks, err := NewClient(ts.URL).PlaylistTracks(context.Background(), "p7")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Naima" {
		t.Errorf("Unexpected tracks: %+v", tracks)
	}
}

func TestPlayPlaylistOmitsEmptyDevice(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(model.StatusOK)
	}))
	defer ts.Close()

	if err := NewClient(ts.URL).PlayPlaylist(context.Background(), "p7", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := got["device_id"]; ok {
		t.Error("Expected device_id to be omitted when empty")
	}
	if got["playlist_id"] != "p7" {
		t.Errorf("Expected playlist_id p7, got %q", got["playlist_id"])
	}
}

func TestPingDistinguishesDownFromFailing(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(model.APIError{Detail: "rate limited"})
	}))
	defer failing.Close()

	if !NewClient(failing.URL).Ping(context.Background()) {
		t.Error("A responding proxy counts as up even when a call fails")
	}

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()
	if NewClient(down.URL).Ping(context.Background()) {
		t.Error("A dead proxy should not count as up")
	}
}
