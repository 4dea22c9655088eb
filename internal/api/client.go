// Package api is the control window's client for the loopback proxy. One
// method per endpoint; responses decode straight into the model types the
// window renders.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tapedeck/tapedeck/internal/model"
)

const (
	defaultTimeout = 5 * time.Second

	// Playlist reads page through larger responses and get a longer leash.
	playlistTimeout = 10 * time.Second

	userAgent = "Tapedeck/1.0"
)

// ErrBackendDown is returned when the proxy cannot be reached at all, as
// opposed to the proxy reporting a failure of its own.
var ErrBackendDown = errors.New("backend unreachable")

// ErrUnsupported is returned when the proxy rejects an operation as a
// client-side limitation (a 400) rather than a provider failure. The window
// shows these with softer wording than real errors.
var ErrUnsupported = errors.New("not supported by the provider")

// Client talks to a running tapedeckd instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	slowClient *http.Client
}

// NewClient creates a proxy client for the given base URL,
// e.g. "http://127.0.0.1:8000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		slowClient: &http.Client{
			Timeout: playlistTimeout,
		},
	}
}

// BaseURL returns the address the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs one round trip and returns the response body. Proxy
// error bodies are unwrapped into their detail message.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	return c.roundTrip(ctx, c.httpClient, method, path, payload)
}

func (c *Client) roundTrip(ctx context.Context, hc *http.Client, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendDown, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr model.APIError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Detail != "" {
			if resp.StatusCode == http.StatusBadRequest {
				return nil, fmt.Errorf("%w: %s", ErrUnsupported, apiErr.Detail)
			}
			return nil, errors.New(apiErr.Detail)
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return data, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	data, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	_, err := c.doRequest(ctx, http.MethodPost, path, payload)
	return err
}

// PlaybackState returns the current playback snapshot. A nil state with a
// nil error means nothing is playing.
func (c *Client) PlaybackState(ctx context.Context) (*model.PlaybackState, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/playback/state", nil)
	if err != nil {
		return nil, err
	}

	var state model.PlaybackState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if state.Item == nil && state.Device == nil && !state.IsPlaying {
		return nil, nil
	}
	return &state, nil
}

func (c *Client) Play(ctx context.Context) error {
	return c.post(ctx, "/playback/play", nil)
}

func (c *Client) Pause(ctx context.Context) error {
	return c.post(ctx, "/playback/pause", nil)
}

func (c *Client) Next(ctx context.Context) error {
	return c.post(ctx, "/playback/next", nil)
}

func (c *Client) Previous(ctx context.Context) error {
	return c.post(ctx, "/playback/previous", nil)
}

func (c *Client) Seek(ctx context.Context, positionMs int) error {
	return c.post(ctx, "/playback/seek", map[string]int{"position_ms": positionMs})
}

func (c *Client) SetVolume(ctx context.Context, percent int) error {
	return c.post(ctx, "/playback/volume", map[string]int{"volume_percent": percent})
}

func (c *Client) SetShuffle(ctx context.Context, state bool) error {
	return c.post(ctx, "/playback/shuffle", map[string]bool{"state": state})
}

func (c *Client) SetRepeat(ctx context.Context, mode string) error {
	return c.post(ctx, "/playback/repeat", map[string]string{"mode": mode})
}

// Devices returns the currently visible playback devices.
func (c *Client) Devices(ctx context.Context) ([]model.Device, error) {
	var list model.DeviceList
	if err := c.get(ctx, "/devices", &list); err != nil {
		return nil, err
	}
	return list.Devices, nil
}

func (c *Client) TransferPlayback(ctx context.Context, deviceID string) error {
	return c.post(ctx, "/devices/transfer", map[string]string{"device_id": deviceID})
}

// Playlists returns the user's playlists.
func (c *Client) Playlists(ctx context.Context) ([]model.Playlist, error) {
	data, err := c.roundTrip(ctx, c.slowClient, http.MethodGet, "/playlists", nil)
	if err != nil {
		return nil, err
	}
	var list model.PlaylistList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return list.Playlists, nil
}

// PlaylistTracks returns the tracks of one playlist.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]model.PlaylistTrack, error) {
	data, err := c.roundTrip(ctx, c.slowClient, http.MethodGet, "/playlists/"+playlistID+"/tracks", nil)
	if err != nil {
		return nil, err
	}
	var list model.TrackList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return list.Tracks, nil
}

// PlayPlaylist starts playback of a playlist, optionally on a specific device.
func (c *Client) PlayPlaylist(ctx context.Context, playlistID, deviceID string) error {
	payload := map[string]string{"playlist_id": playlistID}
	if deviceID != "" {
		payload["device_id"] = deviceID
	}
	return c.post(ctx, "/playlists/play", payload)
}

func (c *Client) AddPlaylistTrack(ctx context.Context, playlistID, trackURI string) error {
	return c.post(ctx, "/playlists/"+playlistID+"/add_track", map[string]string{"track_uri": trackURI})
}

func (c *Client) RemovePlaylistTrack(ctx context.Context, playlistID, trackURI string) error {
	return c.post(ctx, "/playlists/"+playlistID+"/remove_track", map[string]string{"track_uri": trackURI})
}

// Queue returns the upcoming tracks.
func (c *Client) Queue(ctx context.Context) ([]model.QueueEntry, error) {
	var list model.QueueList
	if err := c.get(ctx, "/queue", &list); err != nil {
		return nil, err
	}
	return list.Queue, nil
}

// ClearQueue asks the proxy to clear the queue. The provider does not
// support this, so the call reports the limitation as an error.
func (c *Client) ClearQueue(ctx context.Context) error {
	return c.post(ctx, "/queue/clear", nil)
}

// Ping reports whether a proxy is answering at the base URL.
func (c *Client) Ping(ctx context.Context) bool {
	_, err := c.PlaybackState(ctx)
	return err == nil || !errors.Is(err, ErrBackendDown)
}
