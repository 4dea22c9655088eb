package ui

import (
	"bytes"
	"context"
	"image/color"
	"math"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// CassetteView draws the animated tape deck: a cassette shell with a label
// strip, two spinning reels, album art in the middle, an equalizer row, and
// the mood line. Reels spin and bars jiggle only while playback is running.
type CassetteView struct {
	root *fyne.Container

	frame    *canvas.Rectangle
	topStrip *canvas.Rectangle
	title    *canvas.Text
	info     *canvas.Text
	mood     *canvas.Text
	art      *canvas.Image

	leftReel  *reel
	rightReel *reel
	eq        *equalizer

	mu      sync.Mutex
	playing bool
	angle   float64
	rng     *rand.Rand
}

// NewCassetteView builds the cassette with the default palette.
func NewCassetteView() *CassetteView {
	cv := &CassetteView{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	palette := PaletteFor(ThemeNameDefault)

	cv.frame = canvas.NewRectangle(palette.Background)
	cv.frame.StrokeColor = palette.FrameBorder
	cv.frame.StrokeWidth = 1
	cv.frame.CornerRadius = 16

	cv.topStrip = canvas.NewRectangle(palette.TopStrip)
	cv.topStrip.CornerRadius = 8

	cv.title = canvas.NewText("", palette.Background)
	cv.title.TextStyle = fyne.TextStyle{Bold: true}
	cv.title.TextSize = 14

	cv.info = canvas.NewText("", palette.Background)
	cv.info.TextSize = 11

	cv.mood = canvas.NewText("", palette.Text)
	cv.mood.TextSize = 10

	cv.art = canvas.NewImageFromImage(nil)
	cv.art.FillMode = canvas.ImageFillContain

	cv.leftReel = newReel(palette.ReelBorder)
	cv.rightReel = newReel(palette.ReelBorder)
	cv.eq = newEqualizer(palette.Equalizer)

	cv.root = container.NewWithoutLayout()
	cv.root.Add(cv.frame)
	cv.root.Add(cv.topStrip)
	cv.root.Add(cv.title)
	cv.root.Add(cv.info)
	cv.root.Add(cv.art)
	for _, obj := range cv.leftReel.objects() {
		cv.root.Add(obj)
	}
	for _, obj := range cv.rightReel.objects() {
		cv.root.Add(obj)
	}
	for _, bar := range cv.eq.bars {
		cv.root.Add(bar)
	}
	cv.root.Add(cv.mood)

	cv.layout()
	return cv
}

// Container returns the renderable tree.
func (cv *CassetteView) Container() *fyne.Container {
	return cv.root
}

func (cv *CassetteView) layout() {
	cv.frame.Resize(fyne.NewSize(CassetteWidth, CassetteHeight))
	cv.frame.Move(fyne.NewPos(0, 0))

	cv.topStrip.Resize(fyne.NewSize(CassetteWidth-24, 44))
	cv.topStrip.Move(fyne.NewPos(12, 10))

	cv.title.Move(fyne.NewPos(22, 14))
	cv.info.Move(fyne.NewPos(22, 34))

	cv.leftReel.moveTo(fyne.NewPos(80, 130))
	cv.rightReel.moveTo(fyne.NewPos(CassetteWidth-80, 130))

	cv.art.Resize(fyne.NewSize(ArtSize, ArtSize))
	cv.art.Move(fyne.NewPos(CassetteWidth/2-ArtSize/2, 92))

	cv.eq.layout(fyne.NewPos(40, CassetteHeight-52), fyne.NewSize(CassetteWidth-80, 26))

	cv.mood.Move(fyne.NewPos(22, CassetteHeight-22))

	cv.root.Resize(fyne.NewSize(CassetteWidth, CassetteHeight))
}

// SetTrack updates the label strip and the mood line.
func (cv *CassetteView) SetTrack(title, info, mood string) {
	cv.title.Text = title
	cv.info.Text = info
	cv.mood.Text = mood
	cv.title.Refresh()
	cv.info.Refresh()
	cv.mood.Refresh()
}

// SetPalette recolors the shell for a theme change.
func (cv *CassetteView) SetPalette(p CassettePalette) {
	cv.frame.FillColor = p.Background
	cv.frame.StrokeColor = p.FrameBorder
	cv.topStrip.FillColor = p.TopStrip
	cv.title.Color = p.Background
	cv.info.Color = p.Background
	cv.mood.Color = p.Text
	cv.leftReel.setRingColor(p.ReelBorder)
	cv.rightReel.setRingColor(p.ReelBorder)
	cv.eq.setColor(p.Equalizer)
	cv.root.Refresh()
}

// SetArt replaces the album art; nil clears it.
func (cv *CassetteView) SetArt(data []byte) {
	if data == nil {
		cv.art.Resource = nil
		cv.art.Refresh()
		return
	}
	cv.art.Resource = fyne.NewStaticResource("album-art", bytes.Clone(data))
	cv.art.Refresh()
}

// SetPlaying starts or stops the animations. Stopping resets the reels to
// their rest angle.
func (cv *CassetteView) SetPlaying(playing bool) {
	cv.mu.Lock()
	cv.playing = playing
	if !playing {
		cv.angle = 0
	}
	cv.mu.Unlock()
	if !playing {
		cv.leftReel.setAngle(0)
		cv.rightReel.setAngle(0)
	}
}

// Animate drives the reel and equalizer frames until the context is
// cancelled. Call it from a goroutine; widget updates run via fyne.Do.
func (cv *CassetteView) Animate(ctx context.Context) {
	ticker := time.NewTicker(ReelFrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cv.mu.Lock()
		if !cv.playing {
			cv.mu.Unlock()
			continue
		}
		cv.angle = math.Mod(cv.angle+ReelStepDegrees, 360)
		angle := cv.angle
		cv.eq.step(cv.rng)
		cv.mu.Unlock()

		fyne.Do(func() {
			cv.leftReel.setAngle(angle)
			cv.rightReel.setAngle(angle)
			cv.eq.refresh()
		})
	}
}

// reel is one tape reel: an outer ring, a hub, and eight spokes that rotate
// around the center.
type reel struct {
	outer  *canvas.Circle
	hub    *canvas.Circle
	spokes []*canvas.Line
	center fyne.Position
}

func newReel(ring color.Color) *reel {
	r := &reel{
		outer: canvas.NewCircle(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 255}),
		hub:   canvas.NewCircle(color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 255}),
	}
	r.outer.StrokeColor = ring
	r.outer.StrokeWidth = 3
	r.hub.StrokeColor = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	r.hub.StrokeWidth = 2

	for i := 0; i < 8; i++ {
		line := canvas.NewLine(color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 255})
		line.StrokeWidth = 2
		r.spokes = append(r.spokes, line)
	}
	return r
}

func (r *reel) objects() []fyne.CanvasObject {
	objs := []fyne.CanvasObject{r.outer, r.hub}
	for _, s := range r.spokes {
		objs = append(objs, s)
	}
	return objs
}

func (r *reel) moveTo(center fyne.Position) {
	r.center = center
	r.outer.Resize(fyne.NewSize(ReelRadius*2, ReelRadius*2))
	r.outer.Move(fyne.NewPos(center.X-ReelRadius, center.Y-ReelRadius))

	hubRadius := ReelRadius / 2
	r.hub.Resize(fyne.NewSize(hubRadius*2, hubRadius*2))
	r.hub.Move(fyne.NewPos(center.X-hubRadius, center.Y-hubRadius))

	r.setAngle(0)
}

func (r *reel) setRingColor(c color.Color) {
	r.outer.StrokeColor = c
}

func (r *reel) setAngle(degrees float64) {
	inner := float64(ReelRadius) / 4
	outer := float64(SpokeLength)
	for i, line := range r.spokes {
		rad := (degrees + float64(i)*45) * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		line.Position1 = fyne.NewPos(
			r.center.X+float32(inner*cos),
			r.center.Y+float32(inner*sin),
		)
		line.Position2 = fyne.NewPos(
			r.center.X+float32(outer*cos),
			r.center.Y+float32(outer*sin),
		)
		line.Refresh()
	}
}

// equalizer is the jiggling bar row under the reels.
type equalizer struct {
	bars   []*canvas.Rectangle
	values []float64
	origin fyne.Position
	size   fyne.Size
}

func newEqualizer(c color.Color) *equalizer {
	eq := &equalizer{
		values: make([]float64, EqualizerBars),
	}
	for i := 0; i < EqualizerBars; i++ {
		eq.values[i] = 0.2
		bar := canvas.NewRectangle(c)
		bar.CornerRadius = 2
		eq.bars = append(eq.bars, bar)
	}
	return eq
}

func (eq *equalizer) setColor(c color.Color) {
	for _, bar := range eq.bars {
		bar.FillColor = c
	}
}

func (eq *equalizer) layout(origin fyne.Position, size fyne.Size) {
	eq.origin = origin
	eq.size = size
	eq.refresh()
}

// step jiggles the bar heights a little, clamped to [0.05, 1].
func (eq *equalizer) step(rng *rand.Rand) {
	for i := range eq.values {
		delta := rng.Float64()*0.35 - 0.15
		eq.values[i] = math.Min(1.0, math.Max(0.05, eq.values[i]+delta))
	}
}

func (eq *equalizer) refresh() {
	barWidth := eq.size.Width / float32(EqualizerBars) / 1.5
	spacing := barWidth / 2
	for i, bar := range eq.bars {
		h := eq.size.Height * float32(eq.values[i])
		x := eq.origin.X + float32(i)*(barWidth+spacing)
		bar.Resize(fyne.NewSize(barWidth, h))
		bar.Move(fyne.NewPos(x, eq.origin.Y+eq.size.Height-h))
		bar.Refresh()
	}
}
