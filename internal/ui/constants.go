package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconNext     = "⏭"
	IconPrevious = "⏮"
	IconShuffle  = "🔀"
	IconRepeat   = "🔁"
	IconVolume   = "🔊"
	IconDevice   = "📻"
	IconPlaylist = "📼"
	IconQueue    = "☰"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	DashPlaceholder = "—"
	BlankTimestamp  = "--:--"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 420
	WindowMinHeight float32 = 560

	CassetteWidth  float32 = 380
	CassetteHeight float32 = 230
	ReelRadius     float32 = 34
	SpokeLength    float32 = 26

	ArtSize         float32 = 76
	AccentBarHeight float32 = 4
)

// Animation timing
const (
	ReelFrameInterval = 50 * time.Millisecond
	ReelStepDegrees   = 6.0

	EqualizerBars = 18

	BackgroundFrameInterval = 80 * time.Millisecond
	BackgroundHueStep       = 0.6
)

// Status line behavior
const (
	StatusAutoClear = 4 * time.Second
)
