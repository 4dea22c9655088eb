package ui

import (
	"sync"

	"github.com/tapedeck/tapedeck/internal/model"
)

// Snapshot is one poll result: either a playback state (nil when nothing is
// playing) or an error talking to the proxy.
type Snapshot struct {
	State *model.PlaybackState
	Err   error
}

// RenderPlan tells the widgets what one snapshot means for them. It is
// computed off the widget tree so the polling behavior stays testable.
type RenderPlan struct {
	NothingPlaying bool
	ErrorText      string

	TrackLine string
	TimeLine  string
	IsPlaying bool

	// MoveSlider is false while the user drags the progress slider; a poll
	// must never yank the handle out from under the drag.
	MoveSlider bool
	SliderFrac float64

	// SetVolume mirrors the active device volume into the volume slider.
	SetVolume bool
	Volume    int

	ShuffleOn  bool
	RepeatMode model.RepeatMode

	ThemeName string
	MoodLine  string

	// TrackChanged fires once per track transition; the window refetches
	// album art and the queue on it.
	TrackChanged bool
	ArtURL       string
	TrackURI     string
}

// ViewState carries the little state the window needs between polls: the
// last seen track, the playing flag for the play/pause toggle, and whether
// the progress slider is mid-drag. Apply runs on the poller goroutine while
// the drag methods run on the event thread, so access is serialized.
type ViewState struct {
	mu          sync.Mutex
	lastTrackID string
	lastPlaying bool
	durationMs  int
	dragging    bool
}

// NewViewState creates an empty view state.
func NewViewState() *ViewState {
	return &ViewState{}
}

// Apply folds one snapshot into the state and returns the render plan.
func (v *ViewState) Apply(snap Snapshot) RenderPlan {
	v.mu.Lock()
	defer v.mu.Unlock()

	if snap.Err != nil {
		v.lastPlaying = false
		v.durationMs = 0
		return RenderPlan{
			NothingPlaying: true,
			ErrorText:      snap.Err.Error(),
			TimeLine:       BlankTimestamp + " / " + BlankTimestamp,
			ThemeName:      ThemeNameDefault,
			MoodLine:       MoodLine(ThemeNameDefault),
		}
	}

	state := snap.State
	if state == nil || state.Item == nil {
		v.lastPlaying = false
		v.durationMs = 0
		return RenderPlan{
			NothingPlaying: true,
			TimeLine:       BlankTimestamp + " / " + BlankTimestamp,
			ThemeName:      ThemeNameDefault,
			MoodLine:       MoodLine(ThemeNameDefault),
		}
	}

	track := state.Item
	v.lastPlaying = state.IsPlaying
	v.durationMs = track.DurationMs

	// Genre is guessed from the title and album text only; artist names
	// trigger too many false positives.
	themeName := DetectTheme(track.Name, track.Album.Name)

	plan := RenderPlan{
		TrackLine:  track.Name + " " + DashPlaceholder + " " + track.Artists,
		TimeLine:   model.FormatMs(state.ProgressMs) + " / " + model.FormatMs(track.DurationMs),
		IsPlaying:  state.IsPlaying,
		ShuffleOn:  state.ShuffleState,
		RepeatMode: model.NormalizeRepeatMode(state.RepeatState),
		ThemeName:  themeName,
		MoodLine:   MoodLine(themeName),
		TrackURI:   track.URI,
	}

	if !v.dragging && track.DurationMs > 0 {
		plan.MoveSlider = true
		plan.SliderFrac = float64(state.ProgressMs) / float64(track.DurationMs)
		if plan.SliderFrac > 1 {
			plan.SliderFrac = 1
		}
	}

	if d := state.Device; d != nil && d.VolumePercent >= 0 && d.VolumePercent <= 100 {
		plan.SetVolume = true
		plan.Volume = d.VolumePercent
	}

	if track.ID != v.lastTrackID {
		plan.TrackChanged = true
		plan.ArtURL = track.ArtURL()
		v.lastTrackID = track.ID
	}

	return plan
}

// LastPlaying reports whether the most recent snapshot was playing; the
// play/pause button uses it to pick which call to make.
func (v *ViewState) LastPlaying() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastPlaying
}

// BeginDrag marks the progress slider as user-held.
func (v *ViewState) BeginDrag() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dragging = true
}

// EndDrag releases the slider and translates the final fraction into a seek
// offset. ok is false when no track duration is known.
func (v *ViewState) EndDrag(fraction float64) (seekMs int, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dragging = false
	if v.durationMs <= 0 {
		return 0, false
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return int(float64(v.durationMs) * fraction), true
}

// Dragging reports whether the slider is currently user-held.
func (v *ViewState) Dragging() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dragging
}
