package ui

import (
	"errors"
	"testing"

	"github.com/tapedeck/tapedeck/internal/model"
)

func playingSnapshot(trackID string) Snapshot {
	return Snapshot{State: &model.PlaybackState{
		IsPlaying:  true,
		ProgressMs: 60000,
		Item: &model.Track{
			ID:         trackID,
			Name:       "Kind of Blue",
			URI:        "spotify:track:" + trackID,
			Artists:    "Miles Davis",
			DurationMs: 240000,
			Album: model.Album{
				Name:   "Kind of Blue",
				Images: []model.Image{{URL: "https://img/" + trackID, Width: 640, Height: 640}},
			},
		},
	}}
}

func TestApplyNothingPlaying(t *testing.T) {
	v := NewViewState()

	plan := v.Apply(Snapshot{})
	if !plan.NothingPlaying {
		t.Error("Expected NothingPlaying for nil state")
	}
	if plan.TimeLine != "--:-- / --:--" {
		t.Errorf("Expected blank time line, got %q", plan.TimeLine)
	}
	if plan.MoveSlider {
		t.Error("Slider should not move when nothing is playing")
	}
	if v.LastPlaying() {
		t.Error("LastPlaying should be false")
	}
}

func TestApplyError(t *testing.T) {
	v := NewViewState()

	plan := v.Apply(Snapshot{Err: errors.New("backend unreachable")})
	if !plan.NothingPlaying {
		t.Error("Expected blanked UI on error")
	}
	if plan.ErrorText != "backend unreachable" {
		t.Errorf("Expected error text, got %q", plan.ErrorText)
	}
	if plan.ThemeName != ThemeNameDefault {
		t.Errorf("Expected default theme on error, got %q", plan.ThemeName)
	}
}

func TestApplyPlaying(t *testing.T) {
	v := NewViewState()

	plan := v.Apply(playingSnapshot("t1"))
	if plan.NothingPlaying {
		t.Error("Expected a playing plan")
	}
	if plan.TrackLine != "Kind of Blue — Miles Davis" {
		t.Errorf("Unexpected track line %q", plan.TrackLine)
	}
	if plan.TimeLine != "01:00 / 04:00" {
		t.Errorf("Unexpected time line %q", plan.TimeLine)
	}
	if !plan.MoveSlider || plan.SliderFrac != 0.25 {
		t.Errorf("Expected slider at 0.25, got move=%v frac=%v", plan.MoveSlider, plan.SliderFrac)
	}
	if !v.LastPlaying() {
		t.Error("LastPlaying should be true")
	}
}

func TestTrackChangeDetection(t *testing.T) {
	v := NewViewState()

	plan := v.Apply(playingSnapshot("t1"))
	if !plan.TrackChanged {
		t.Error("First track should count as changed")
	}
	if plan.ArtURL != "https://img/t1" {
		t.Errorf("Expected art URL for t1, got %q", plan.ArtURL)
	}

	// Same track again: no refetch
	plan = v.Apply(playingSnapshot("t1"))
	if plan.TrackChanged {
		t.Error("Same track should not count as changed")
	}

	// New track: refetch
	plan = v.Apply(playingSnapshot("t2"))
	if !plan.TrackChanged {
		t.Error("New track should count as changed")
	}
	if plan.ArtURL != "https://img/t2" {
		t.Errorf("Expected art URL for t2, got %q", plan.ArtURL)
	}
}

func TestPauseAndResumeSameTrackIsNotAChange(t *testing.T) {
	v := NewViewState()

	v.Apply(playingSnapshot("t1"))
	v.Apply(Snapshot{}) // playback stopped
	plan := v.Apply(playingSnapshot("t1"))
	if plan.TrackChanged {
		t.Error("Resuming the same track should not refetch art")
	}
}

func TestDragGuard(t *testing.T) {
	v := NewViewState()
	v.Apply(playingSnapshot("t1"))

	v.BeginDrag()
	if !v.Dragging() {
		t.Fatal("Expected dragging state")
	}

	// Polls arriving mid-drag must not move the slider
	plan := v.Apply(playingSnapshot("t1"))
	if plan.MoveSlider {
		t.Error("Slider must not move while dragging")
	}

	seekMs, ok := v.EndDrag(0.5)
	if !ok {
		t.Fatal("Expected a seek target")
	}
	if seekMs != 120000 {
		t.Errorf("Expected seek to 120000, got %d", seekMs)
	}
	if v.Dragging() {
		t.Error("Drag should be released")
	}
}

func TestEndDragWithoutDuration(t *testing.T) {
	v := NewViewState()
	v.Apply(Snapshot{})

	v.BeginDrag()
	if _, ok := v.EndDrag(0.5); ok {
		t.Error("No duration known, seek should be suppressed")
	}
}

func TestEndDragClampsFraction(t *testing.T) {
	v := NewViewState()
	v.Apply(playingSnapshot("t1"))

	v.BeginDrag()
	if seekMs, _ := v.EndDrag(1.7); seekMs != 240000 {
		t.Errorf("Fraction above 1 should clamp to track end, got %d", seekMs)
	}

	v.BeginDrag()
	if seekMs, _ := v.EndDrag(-0.3); seekMs != 0 {
		t.Errorf("Negative fraction should clamp to 0, got %d", seekMs)
	}
}

func TestVolumeFollowsDevice(t *testing.T) {
	v := NewViewState()

	snap := playingSnapshot("t1")
	snap.State.Device = &model.Device{ID: "d1", Name: "Kitchen", VolumePercent: 70}
	plan := v.Apply(snap)
	if !plan.SetVolume || plan.Volume != 70 {
		t.Errorf("Expected volume mirrored at 70, got set=%v vol=%d", plan.SetVolume, plan.Volume)
	}

	snap.State.Device = nil
	plan = v.Apply(snap)
	if plan.SetVolume {
		t.Error("No device, volume slider should stay put")
	}
}

func TestThemeFollowsTrackText(t *testing.T) {
	v := NewViewState()

	snap := playingSnapshot("t1")
	snap.State.Item.Name = "Jazz at Midnight"
	plan := v.Apply(snap)
	if plan.ThemeName != ThemeNameJazz {
		t.Errorf("Expected jazz theme, got %q", plan.ThemeName)
	}
	if plan.MoodLine == MoodLine(ThemeNameDefault) {
		t.Error("Expected the jazz mood line")
	}
}

func TestRepeatAndShuffleReadBack(t *testing.T) {
	v := NewViewState()

	snap := playingSnapshot("t1")
	snap.State.ShuffleState = true
	snap.State.RepeatState = "track"
	plan := v.Apply(snap)
	if !plan.ShuffleOn {
		t.Error("Expected shuffle on")
	}
	if plan.RepeatMode != model.RepeatTrack {
		t.Errorf("Expected repeat track, got %q", plan.RepeatMode)
	}

	snap.State.RepeatState = "bogus"
	plan = v.Apply(snap)
	if plan.RepeatMode != model.RepeatOff {
		t.Errorf("Unknown repeat state should normalize to off, got %q", plan.RepeatMode)
	}
}

// Polls apply snapshots on a background goroutine while drag events arrive
// on the event thread; run both at once so the race detector can check the
// locking.
func TestConcurrentApplyAndDrag(t *testing.T) {
	v := NewViewState()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			v.Apply(playingSnapshot("t1"))
			v.LastPlaying()
		}
	}()

	for i := 0; i < 500; i++ {
		v.BeginDrag()
		v.Dragging()
		v.EndDrag(0.5)
	}
	<-done
}
