package model

// Package model defines the wire contract shared by the tapedeckd proxy and
// the desktop window: playback snapshots, tracks, devices, playlists and the
// queue. Every struct mirrors one JSON shape of the local HTTP API; fetched
// values are replaced wholesale, never mutated in place.
