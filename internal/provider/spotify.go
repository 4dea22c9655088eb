package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/tapedeck/tapedeck/internal/model"
)

const (
	playlistPageLimit      = 50
	playlistTrackPageLimit = 100

	tokenFilePermission = 0o600
	oauthState          = "tapedeckd-auth-state"
)

// Credentials identify this application to the provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	TokenPath    string
}

// SpotifySession implements Session on top of the Spotify Web API client.
type SpotifySession struct {
	creds  Credentials
	auth   *spotifyauth.Authenticator
	client *spotify.Client
	logger *slog.Logger
}

// NewSpotifySession builds an unauthorized session. Call Authorize before use.
func NewSpotifySession(creds Credentials, logger *slog.Logger) *SpotifySession {
	if logger == nil {
		logger = slog.Default()
	}
	auth := spotifyauth.New(
		spotifyauth.WithRedirectURL(creds.RedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPlaybackState,
			spotifyauth.ScopeUserModifyPlaybackState,
			spotifyauth.ScopeUserReadCurrentlyPlaying,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistModifyPrivate,
			spotifyauth.ScopePlaylistModifyPublic,
		),
		spotifyauth.WithClientID(creds.ClientID),
		spotifyauth.WithClientSecret(creds.ClientSecret),
	)
	return &SpotifySession{creds: creds, auth: auth, logger: logger}
}

// Authorize establishes the provider session, reusing the cached token when
// one is present and still accepted, otherwise running the interactive
// authorization-code flow once and caching the result.
func (s *SpotifySession) Authorize(ctx context.Context) error {
	token, err := s.loadToken()
	if err == nil {
		client := spotify.New(s.auth.Client(ctx, token))
		if user, err := client.CurrentUser(ctx); err == nil {
			s.client = client
			s.logger.Info("authorized with cached token", "user", user.DisplayName)
			return nil
		}
		s.logger.Warn("cached token rejected, starting authorization flow")
	}
	return s.authorizeInteractive(ctx)
}

func (s *SpotifySession) authorizeInteractive(ctx context.Context) error {
	authURL := s.auth.AuthURL(oauthState)

	fmt.Printf("Visit the following URL to authorize tapedeckd:\n%s\n", authURL)
	fmt.Print("Enter the authorization code: ")

	var code string
	if _, err := fmt.Scanln(&code); err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := s.auth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange code for token: %w", err)
	}
	if err := s.saveToken(token); err != nil {
		s.logger.Warn("failed to cache token", "error", err)
	}

	client := spotify.New(s.auth.Client(ctx, token))
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("authorization check failed: %w", err)
	}

	s.client = client
	s.logger.Info("authorization flow completed", "user", user.DisplayName)
	return nil
}

func (s *SpotifySession) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.creds.TokenPath)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *SpotifySession) saveToken(token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.creds.TokenPath, data, tokenFilePermission)
}

func (s *SpotifySession) api() (*spotify.Client, error) {
	if s.client == nil {
		return nil, ErrNotAuthorized
	}
	return s.client, nil
}

// PlaybackState returns the current playback snapshot, nil when idle.
func (s *SpotifySession) PlaybackState(ctx context.Context) (*model.PlaybackState, error) {
	client, err := s.api()
	if err != nil {
		return nil, err
	}
	st, err := client.PlayerState(ctx)
	if err != nil {
		return nil, fmt.Errorf("player state: %w", err)
	}
	return mapPlayerState(st), nil
}

func (s *SpotifySession) Play(ctx context.Context) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Play(ctx)
}

func (s *SpotifySession) Pause(ctx context.Context) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Pause(ctx)
}

func (s *SpotifySession) Next(ctx context.Context) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Next(ctx)
}

func (s *SpotifySession) Previous(ctx context.Context) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Previous(ctx)
}

func (s *SpotifySession) Seek(ctx context.Context, positionMs int) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Seek(ctx, positionMs)
}

func (s *SpotifySession) SetVolume(ctx context.Context, percent int) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Volume(ctx, model.ClampVolume(percent))
}

func (s *SpotifySession) SetShuffle(ctx context.Context, state bool) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Shuffle(ctx, state)
}

func (s *SpotifySession) SetRepeat(ctx context.Context, mode model.RepeatMode) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.Repeat(ctx, string(model.NormalizeRepeatMode(string(mode))))
}

func (s *SpotifySession) Devices(ctx context.Context) ([]model.Device, error) {
	client, err := s.api()
	if err != nil {
		return nil, err
	}
	devices, err := client.PlayerDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("devices: %w", err)
	}
	return mapDevices(devices), nil
}

// TransferPlayback switches the active device without forcing playback.
func (s *SpotifySession) TransferPlayback(ctx context.Context, deviceID string) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	return client.TransferPlayback(ctx, spotify.ID(deviceID), false)
}

func (s *SpotifySession) Playlists(ctx context.Context) ([]model.Playlist, error) {
	client, err := s.api()
	if err != nil {
		return nil, err
	}
	page, err := client.CurrentUsersPlaylists(ctx, spotify.Limit(playlistPageLimit))
	if err != nil {
		return nil, fmt.Errorf("playlists: %w", err)
	}
	return mapPlaylists(page.Playlists), nil
}

func (s *SpotifySession) PlaylistTracks(ctx context.Context, playlistID string) ([]model.PlaylistTrack, error) {
	client, err := s.api()
	if err != nil {
		return nil, err
	}
	page, err := client.GetPlaylistItems(ctx, spotify.ID(playlistID), spotify.Limit(playlistTrackPageLimit))
	if err != nil {
		return nil, fmt.Errorf("playlist tracks: %w", err)
	}
	return mapPlaylistItems(page.Items), nil
}

// PlayPlaylist starts playlist playback, optionally on a specific device.
func (s *SpotifySession) PlayPlaylist(ctx context.Context, playlistID, deviceID string) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	uri := playlistURI(playlistID)
	opts := &spotify.PlayOptions{PlaybackContext: &uri}
	if deviceID != "" {
		id := spotify.ID(deviceID)
		opts.DeviceID = &id
	}
	return client.PlayOpt(ctx, opts)
}

func (s *SpotifySession) AddPlaylistTrack(ctx context.Context, playlistID, trackURI string) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	_, err = client.AddTracksToPlaylist(ctx, spotify.ID(playlistID), trackURIToID(trackURI))
	return err
}

func (s *SpotifySession) RemovePlaylistTrack(ctx context.Context, playlistID, trackURI string) error {
	client, err := s.api()
	if err != nil {
		return err
	}
	_, err = client.RemoveTracksFromPlaylist(ctx, spotify.ID(playlistID), trackURIToID(trackURI))
	return err
}

func (s *SpotifySession) Queue(ctx context.Context) ([]model.QueueEntry, error) {
	client, err := s.api()
	if err != nil {
		return nil, err
	}
	queue, err := client.GetQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("queue: %w", err)
	}
	if queue == nil {
		return nil, nil
	}
	return mapQueue(queue.Items), nil
}

// ClearQueue is a documented permanent limitation of the provider.
func (s *SpotifySession) ClearQueue(ctx context.Context) error {
	return fmt.Errorf("clearing the queue: %w", ErrUnsupported)
}

var _ Session = (*SpotifySession)(nil)
