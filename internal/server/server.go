// Package server implements the loopback REST proxy in front of the provider
// session. Handlers translate one local call into one provider call, narrow
// the response, and report failures as a textual detail message. The server
// keeps no state of its own beyond the session handle.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tapedeck/tapedeck/internal/model"
	"github.com/tapedeck/tapedeck/internal/provider"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server is the proxy HTTP server.
type Server struct {
	session provider.Session
	logger  *slog.Logger
	httpSrv *http.Server
}

// New builds a Server serving the full endpoint set on addr.
func New(addr string, session provider.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{session: session, logger: logger}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.withAccessLog(s.routes()),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /playback/state", s.handlePlaybackState)
	mux.HandleFunc("POST /playback/play", s.action(s.session.Play))
	mux.HandleFunc("POST /playback/pause", s.action(s.session.Pause))
	mux.HandleFunc("POST /playback/next", s.action(s.session.Next))
	mux.HandleFunc("POST /playback/previous", s.action(s.session.Previous))
	mux.HandleFunc("POST /playback/seek", s.handleSeek)
	mux.HandleFunc("POST /playback/volume", s.handleVolume)
	mux.HandleFunc("POST /playback/shuffle", s.handleShuffle)
	mux.HandleFunc("POST /playback/repeat", s.handleRepeat)

	mux.HandleFunc("GET /devices", s.handleDevices)
	mux.HandleFunc("POST /devices/transfer", s.handleDeviceTransfer)

	mux.HandleFunc("GET /playlists", s.handlePlaylists)
	mux.HandleFunc("GET /playlists/{id}/tracks", s.handlePlaylistTracks)
	mux.HandleFunc("POST /playlists/play", s.handlePlaylistPlay)
	mux.HandleFunc("POST /playlists/{id}/add_track", s.handlePlaylistAddTrack)
	mux.HandleFunc("POST /playlists/{id}/remove_track", s.handlePlaylistRemoveTrack)

	mux.HandleFunc("GET /queue", s.handleQueue)
	mux.HandleFunc("POST /queue/clear", s.handleQueueClear)

	return mux
}

// ListenAndServe blocks until the context is cancelled, then drains.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("proxy listening", "addr", s.httpSrv.Addr)
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}

// withAccessLog tags every request with an id and logs method, path, status
// and duration.
func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// writeJSON writes v as the JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// writeError maps a provider error onto the two failure classes: a permanent
// client-side limitation (400) or a generic provider failure (500).
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, provider.ErrUnsupported) {
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, model.APIError{Detail: err.Error()})
}

// decodeBody parses a JSON request body into dst. Unknown fields are ignored;
// the contract is type coercion, not validation.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, model.APIError{Detail: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// action wraps the bodiless mutating endpoints (play, pause, next, previous).
func (s *Server) action(call func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := call(r.Context()); err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, model.StatusOK)
	}
}
