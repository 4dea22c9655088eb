package provider

import (
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/tapedeck/tapedeck/internal/model"
)

// Mapping from the provider's large response envelopes down to the fields the
// window needs. All functions are pure; nil or empty input maps to the
// empty-shape value, never an error.

func artistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return model.JoinArtists(names)
}

func mapImages(images []spotify.Image) []model.Image {
	if len(images) == 0 {
		return nil
	}
	out := make([]model.Image, 0, len(images))
	for _, img := range images {
		out = append(out, model.Image{
			URL:    img.URL,
			Height: int(img.Height),
			Width:  int(img.Width),
		})
	}
	return out
}

func mapTrack(t *spotify.FullTrack) *model.Track {
	if t == nil {
		return nil
	}
	return &model.Track{
		ID:         string(t.ID),
		Name:       t.Name,
		URI:        string(t.URI),
		Artists:    artistNames(t.Artists),
		DurationMs: int(t.Duration),
		Album: model.Album{
			Name:   t.Album.Name,
			Images: mapImages(t.Album.Images),
		},
	}
}

func mapPlayerState(st *spotify.PlayerState) *model.PlaybackState {
	if st == nil {
		return nil
	}
	out := &model.PlaybackState{
		IsPlaying:    st.Playing,
		ProgressMs:   int(st.Progress),
		Item:         mapTrack(st.Item),
		ShuffleState: st.ShuffleState,
		RepeatState:  st.RepeatState,
	}
	if st.Device.ID != "" {
		dev := mapDevice(st.Device)
		out.Device = &dev
	}
	return out
}

func mapDevice(d spotify.PlayerDevice) model.Device {
	return model.Device{
		ID:            string(d.ID),
		Name:          d.Name,
		Type:          d.Type,
		IsActive:      d.Active,
		VolumePercent: int(d.Volume),
	}
}

func mapDevices(devices []spotify.PlayerDevice) []model.Device {
	out := make([]model.Device, 0, len(devices))
	for _, d := range devices {
		out = append(out, mapDevice(d))
	}
	return out
}

func mapPlaylists(playlists []spotify.SimplePlaylist) []model.Playlist {
	out := make([]model.Playlist, 0, len(playlists))
	for _, pl := range playlists {
		out = append(out, model.Playlist{
			ID:          string(pl.ID),
			Name:        pl.Name,
			TracksTotal: int(pl.Tracks.Total),
			ExternalURL: pl.ExternalURLs["spotify"],
		})
	}
	return out
}

func mapPlaylistItems(items []spotify.PlaylistItem) []model.PlaylistTrack {
	out := make([]model.PlaylistTrack, 0, len(items))
	for _, it := range items {
		// Episodes and removed tracks come back without a track object.
		if it.Track.Track == nil {
			continue
		}
		tr := mapTrack(it.Track.Track)
		out = append(out, model.PlaylistTrack{
			ID:      tr.ID,
			Name:    tr.Name,
			Artists: tr.Artists,
			URI:     tr.URI,
		})
	}
	return out
}

func mapQueue(tracks []spotify.FullTrack) []model.QueueEntry {
	out := make([]model.QueueEntry, 0, len(tracks))
	for i := range tracks {
		tr := mapTrack(&tracks[i])
		out = append(out, model.QueueEntry{
			ID:      tr.ID,
			Name:    tr.Name,
			Artists: tr.Artists,
			URI:     tr.URI,
		})
	}
	return out
}

// trackURIToID extracts the bare track ID from a "spotify:track:..." URI.
// A bare ID passes through unchanged.
func trackURIToID(uri string) spotify.ID {
	return spotify.ID(strings.TrimPrefix(uri, "spotify:track:"))
}

// playlistURI builds the context URI used to start playlist playback.
func playlistURI(playlistID string) spotify.URI {
	return spotify.URI("spotify:playlist:" + playlistID)
}
