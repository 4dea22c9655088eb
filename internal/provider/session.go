package provider

import (
	"context"
	"errors"

	"github.com/tapedeck/tapedeck/internal/model"
)

// ErrUnsupported marks operations the streaming provider fundamentally does
// not expose. It is a permanent client-side limitation, distinct from a
// transient provider failure, and callers surface it with a lower severity.
var ErrUnsupported = errors.New("not supported by the streaming provider")

// ErrNotAuthorized is returned when no authorized session is available.
var ErrNotAuthorized = errors.New("provider session not authorized")

// Session is the operation set the proxy needs from an authorized provider
// session. Implementations perform exactly one provider call per method and
// hold no state beyond the authorization itself.
type Session interface {
	// PlaybackState returns the current snapshot, or nil when the provider
	// reports no active playback.
	PlaybackState(ctx context.Context) (*model.PlaybackState, error)

	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Seek(ctx context.Context, positionMs int) error

	SetVolume(ctx context.Context, percent int) error
	SetShuffle(ctx context.Context, state bool) error
	SetRepeat(ctx context.Context, mode model.RepeatMode) error

	Devices(ctx context.Context) ([]model.Device, error)
	TransferPlayback(ctx context.Context, deviceID string) error

	Playlists(ctx context.Context) ([]model.Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID string) ([]model.PlaylistTrack, error)
	PlayPlaylist(ctx context.Context, playlistID, deviceID string) error
	AddPlaylistTrack(ctx context.Context, playlistID, trackURI string) error
	RemovePlaylistTrack(ctx context.Context, playlistID, trackURI string) error

	Queue(ctx context.Context) ([]model.QueueEntry, error)

	// ClearQueue always fails with ErrUnsupported: the provider exposes no
	// way to clear the queue. Kept in the interface so the limitation is
	// reported consistently rather than invented per caller.
	ClearQueue(ctx context.Context) error
}
