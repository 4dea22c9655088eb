package server

import (
	"net/http"

	"github.com/tapedeck/tapedeck/internal/model"
)

// Request bodies carry primitive fields only.
type seekRequest struct {
	PositionMs int `json:"position_ms"`
}

type volumeRequest struct {
	VolumePercent int `json:"volume_percent"`
}

type shuffleRequest struct {
	State bool `json:"state"`
}

type repeatRequest struct {
	Mode string `json:"mode"`
}

type deviceTransferRequest struct {
	DeviceID string `json:"device_id"`
}

type playlistPlayRequest struct {
	PlaylistID string `json:"playlist_id"`
	DeviceID   string `json:"device_id,omitempty"`
}

type trackModifyRequest struct {
	TrackURI string `json:"track_uri"`
}

// handlePlaybackState returns the playback snapshot, or {} when the provider
// reports nothing playing.
func (s *Server) handlePlaybackState(w http.ResponseWriter, r *http.Request) {
	state, err := s.session.PlaybackState(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if state == nil {
		s.writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleSeek(w http.ResponseWriter, r *http.Request) {
	var req seekRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.Seek(r.Context(), req.PositionMs); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

// handleVolume clamps out-of-range input into [0,100] before forwarding.
func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	var req volumeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.SetVolume(r.Context(), model.ClampVolume(req.VolumePercent)); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	var req shuffleRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.SetShuffle(r.Context(), req.State); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

// handleRepeat normalizes unrecognized modes to "off" rather than rejecting.
func (s *Server) handleRepeat(w http.ResponseWriter, r *http.Request) {
	var req repeatRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.SetRepeat(r.Context(), model.NormalizeRepeatMode(req.Mode)); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.session.Devices(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if devices == nil {
		devices = []model.Device{}
	}
	s.writeJSON(w, http.StatusOK, model.DeviceList{Devices: devices})
}

func (s *Server) handleDeviceTransfer(w http.ResponseWriter, r *http.Request) {
	var req deviceTransferRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.TransferPlayback(r.Context(), req.DeviceID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.session.Playlists(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if playlists == nil {
		playlists = []model.Playlist{}
	}
	s.writeJSON(w, http.StatusOK, model.PlaylistList{Playlists: playlists})
}

func (s *Server) handlePlaylistTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := s.session.PlaylistTracks(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if tracks == nil {
		tracks = []model.PlaylistTrack{}
	}
	s.writeJSON(w, http.StatusOK, model.TrackList{Tracks: tracks})
}

func (s *Server) handlePlaylistPlay(w http.ResponseWriter, r *http.Request) {
	var req playlistPlayRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.PlayPlaylist(r.Context(), req.PlaylistID, req.DeviceID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

func (s *Server) handlePlaylistAddTrack(w http.ResponseWriter, r *http.Request) {
	var req trackModifyRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.AddPlaylistTrack(r.Context(), r.PathValue("id"), req.TrackURI); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

func (s *Server) handlePlaylistRemoveTrack(w http.ResponseWriter, r *http.Request) {
	var req trackModifyRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := s.session.RemovePlaylistTrack(r.Context(), r.PathValue("id"), req.TrackURI); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.StatusOK)
}

func (s *Server) handleQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := s.session.Queue(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if queue == nil {
		queue = []model.QueueEntry{}
	}
	s.writeJSON(w, http.StatusOK, model.QueueList{Queue: queue})
}

// handleQueueClear always fails: the provider exposes no queue-clearing
// operation, so the limitation is reported as a 400, never a 500.
func (s *Server) handleQueueClear(w http.ResponseWriter, r *http.Request) {
	err := s.session.ClearQueue(r.Context())
	if err == nil {
		s.writeJSON(w, http.StatusOK, model.StatusOK)
		return
	}
	s.writeError(w, err)
}
