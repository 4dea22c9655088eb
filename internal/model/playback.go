package model

// RepeatMode is the playback repeat setting as the provider understands it.
type RepeatMode string

const (
	RepeatOff     RepeatMode = "off"
	RepeatTrack   RepeatMode = "track"
	RepeatContext RepeatMode = "context"
)

// NormalizeRepeatMode coerces arbitrary input to a valid repeat mode.
// Anything outside {off, track, context} becomes off rather than an error.
func NormalizeRepeatMode(mode string) RepeatMode {
	switch RepeatMode(mode) {
	case RepeatOff, RepeatTrack, RepeatContext:
		return RepeatMode(mode)
	default:
		return RepeatOff
	}
}

// ClampVolume clamps a volume percentage into [0, 100].
func ClampVolume(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// PlaybackState is a snapshot of the provider-side playback at one instant.
// Item is nil when nothing is playing; Device is nil when the provider did
// not report an active device.
type PlaybackState struct {
	IsPlaying    bool    `json:"is_playing"`
	ProgressMs   int     `json:"progress_ms"`
	Item         *Track  `json:"item,omitempty"`
	Device       *Device `json:"device,omitempty"`
	ShuffleState bool    `json:"shuffle_state"`
	RepeatState  string  `json:"repeat_state,omitempty"`
}

// DurationMs returns the duration of the playing track, 0 when idle.
func (ps *PlaybackState) DurationMs() int {
	if ps == nil || ps.Item == nil {
		return 0
	}
	return ps.Item.DurationMs
}

// Device is a snapshot of one provider playback device.
type Device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent int    `json:"volume_percent"`
}

// DeviceList is the response envelope of GET /devices.
type DeviceList struct {
	Devices []Device `json:"devices"`
}

// Status is the fixed body returned by every mutating endpoint.
type Status struct {
	Status string `json:"status"`
}

// StatusOK is the canonical success body.
var StatusOK = Status{Status: "ok"}

// APIError is the error body of the proxy ({"detail": "..."}).
type APIError struct {
	Detail string `json:"detail"`
}
