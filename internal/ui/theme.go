package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CassettePalette holds the colors of one cassette color scheme.
type CassettePalette struct {
	Background  color.RGBA
	TopStrip    color.RGBA
	FrameBorder color.RGBA
	ReelBorder  color.RGBA
	Progress    color.RGBA
	Text        color.RGBA
	Equalizer   color.RGBA
}

// Theme names. DetectTheme maps genre keywords onto these.
const (
	ThemeNameDefault = "default"
	ThemeNameRock    = "rock"
	ThemeNameEDM     = "edm"
	ThemeNameChill   = "chill"
	ThemeNameJazz    = "jazz"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var palettes = map[string]CassettePalette{
	ThemeNameRock: {
		Background:  rgb(0x14, 0x10, 0x18),
		TopStrip:    rgb(0xf4, 0xe4, 0xcc),
		FrameBorder: rgb(0xaa, 0x33, 0x44),
		ReelBorder:  rgb(0xff, 0x4a, 0x4a),
		Progress:    rgb(0xff, 0x88, 0x44),
		Text:        rgb(0xf0, 0xf0, 0xf0),
		Equalizer:   rgb(0xff, 0x8a, 0x4a),
	},
	ThemeNameEDM: {
		Background:  rgb(0x08, 0x10, 0x18),
		TopStrip:    rgb(0x10, 0x24, 0x30),
		FrameBorder: rgb(0x1d, 0xd1, 0xff),
		ReelBorder:  rgb(0x00, 0xe5, 0xff),
		Progress:    rgb(0x00, 0xff, 0xa3),
		Text:        rgb(0xea, 0xfc, 0xff),
		Equalizer:   rgb(0x00, 0xff, 0xa3),
	},
	ThemeNameChill: {
		Background:  rgb(0x10, 0x14, 0x18),
		TopStrip:    rgb(0xe1, 0xed, 0xf8),
		FrameBorder: rgb(0x6c, 0xa0, 0xdc),
		ReelBorder:  rgb(0x9b, 0xbf, 0xf5),
		Progress:    rgb(0x8f, 0xe0, 0xff),
		Text:        rgb(0xf5, 0xf7, 0xfb),
		Equalizer:   rgb(0x8f, 0xe0, 0xff),
	},
	ThemeNameJazz: {
		Background:  rgb(0x18, 0x10, 0x10),
		TopStrip:    rgb(0xf9, 0xe6, 0xc6),
		FrameBorder: rgb(0xd4, 0xa0, 0x5a),
		ReelBorder:  rgb(0xf7, 0xb8, 0x5c),
		Progress:    rgb(0xf7, 0xd2, 0x5c),
		Text:        rgb(0xfd, 0xf6, 0xe3),
		Equalizer:   rgb(0xf7, 0xd2, 0x5c),
	},
	ThemeNameDefault: {
		Background:  rgb(0x15, 0x15, 0x15),
		TopStrip:    rgb(0xe6, 0xe2, 0xda),
		FrameBorder: rgb(0x33, 0x33, 0x33),
		ReelBorder:  rgb(0xff, 0x4a, 0x4a),
		Progress:    rgb(0xff, 0x88, 0x44),
		Text:        rgb(0xf0, 0xf0, 0xf0),
		Equalizer:   rgb(0xff, 0x88, 0x44),
	},
}

// PaletteFor returns the palette for a theme name, falling back to default.
func PaletteFor(name string) CassettePalette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[ThemeNameDefault]
}

var genreKeywords = []struct {
	theme string
	words []string
}{
	{ThemeNameRock, []string{"rock", "metal", "punk"}},
	{ThemeNameEDM, []string{"edm", "dance", "club", "remix", "house"}},
	{ThemeNameChill, []string{"chill", "lofi", "sleep", "study"}},
	{ThemeNameJazz, []string{"jazz", "swing", "bossa"}},
}

// DetectTheme picks a theme by scanning the given text, in practice the
// track title and album, for genre keywords. First match wins, in
// rock/edm/chill/jazz order.
func DetectTheme(parts ...string) string {
	blob := strings.ToLower(strings.Join(parts, " "))
	for _, g := range genreKeywords {
		for _, word := range g.words {
			if strings.Contains(blob, word) {
				return g.theme
			}
		}
	}
	return ThemeNameDefault
}

var moodLines = map[string]string{
	ThemeNameRock:    "⚡ Rock Mode",
	ThemeNameEDM:     "🎛 EDM / Club",
	ThemeNameChill:   "🌙 Chill / Lofi",
	ThemeNameJazz:    "🎷 Jazz Lounge",
	ThemeNameDefault: "🎧 Spotify • Streaming",
}

// MoodLine returns the audiophile status line shown under the cassette.
func MoodLine(themeName string) string {
	line, ok := moodLines[themeName]
	if !ok {
		line = moodLines[ThemeNameDefault]
	}
	return line + "  •  44.1kHz • 320kbps (virtual)"
}

// CompactTheme defines a compact dark theme for the control window with
// reduced padding and font sizes.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 136, B: 68, A: 255} // Tape-orange accent
	case theme.ColorNameBackground:
		return color.RGBA{R: 18, G: 18, B: 18, A: 255} // The deck is always dark
	case theme.ColorNameForeground:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
