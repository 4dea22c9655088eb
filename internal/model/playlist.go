package model

import "fmt"

// Playlist is one of the user's playlists, narrowed to what the window shows.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TracksTotal int    `json:"tracks_total"`
	ExternalURL string `json:"external_url"`
}

// DisplayName renders the playlist list entry, e.g. "Road Trip (42)".
func (p Playlist) DisplayName() string {
	name := p.Name
	if name == "" {
		name = "Unnamed"
	}
	return fmt.Sprintf("%s (%d)", name, p.TracksTotal)
}

// PlaylistTrack is one membership entry of a playlist.
type PlaylistTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists string `json:"artists"`
	URI     string `json:"uri"`
}

// DisplayName renders a track list entry, e.g. "Artist — Title".
func (t PlaylistTrack) DisplayName() string {
	if t.Artists == "" {
		return t.Name
	}
	return t.Artists + " — " + t.Name
}

// QueueEntry has the same shape as a playlist track; the queue is an ordered
// sequence of upcoming entries.
type QueueEntry = PlaylistTrack

// PlaylistList, TrackList and QueueList are the read-endpoint envelopes.
type PlaylistList struct {
	Playlists []Playlist `json:"playlists"`
}

type TrackList struct {
	Tracks []PlaylistTrack `json:"tracks"`
}

type QueueList struct {
	Queue []QueueEntry `json:"queue"`
}
