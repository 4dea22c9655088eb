package ui

import (
	"context"
	"errors"
	"image/color"
	"log"
	"net/url"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tapedeck/tapedeck/internal/api"
	"github.com/tapedeck/tapedeck/internal/model"
	"github.com/tapedeck/tapedeck/internal/settings"
)

const actionTimeout = 10 * time.Second

// RootUI represents the main control window
type RootUI struct {
	window       fyne.Window
	client       *api.Client
	settings     *settings.Settings
	localization *Localization

	viewState *ViewState
	poller    *Poller
	artFetch  *ArtFetcher

	background *Background
	cassette   *CassetteView
	accentBar  *canvas.Rectangle

	// Transport row
	trackLabel    *widget.Label
	timeLabel     *widget.Label
	statusLabel   *widget.Label
	prevBtn       *widget.Button
	playPauseBtn  *widget.Button
	nextBtn       *widget.Button
	progressSlide *widget.Slider
	volumeSlide   *widget.Slider
	shuffleBtn    *widget.Button
	repeatSelect  *widget.Select

	// Devices
	deviceSelect *widget.Select
	devices      []model.Device

	// Playlists
	playlistList    *widget.List
	playlists       []model.Playlist
	selectedIdx     int
	playlistTracks  *widget.List
	tracks          []model.PlaylistTrack
	selectedTrack   int
	currentTrackURI string

	// Queue
	queueList *widget.List
	queue     []model.QueueEntry

	// Guards programmatic slider updates so they are not mistaken for drags
	updatingUI bool

	themeName string

	statusTimerMu sync.Mutex
	statusTimer   *time.Timer
}

// NewRootUI creates and initializes the control window
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client) *RootUI {
	s := settings.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(s.GetLanguage())

	ui := &RootUI{
		window:        window,
		client:        client,
		settings:      s,
		localization:  localization,
		viewState:     NewViewState(),
		background:    NewBackground(),
		cassette:      NewCassetteView(),
		selectedIdx:   -1,
		selectedTrack: -1,
		themeName:     ThemeNameDefault,
	}

	ui.artFetch = NewArtFetcher(func(data []byte) {
		fyne.Do(func() { ui.cassette.SetArt(data) })
	})
	ui.poller = NewPoller(s.GetPollInterval(), ui.fetchSnapshot, ui.onSnapshot)

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// Start launches polling and animations, and performs the initial loads.
func (ui *RootUI) Start(ctx context.Context) {
	go ui.poller.Run(ctx)
	go ui.cassette.Animate(ctx)
	go ui.background.Animate(ctx)

	go ui.loadDevices()
	go ui.loadPlaylists()
	go ui.loadQueue()
}

func (ui *RootUI) fetchSnapshot(ctx context.Context) Snapshot {
	callCtx, cancel := context.WithTimeout(ctx, actionTimeout)
	defer cancel()
	state, err := ui.client.PlaybackState(callCtx)
	return Snapshot{State: state, Err: err}
}

func (ui *RootUI) onSnapshot(snap Snapshot) {
	plan := ui.viewState.Apply(snap)
	fyne.Do(func() { ui.render(plan) })
	if plan.TrackChanged {
		ui.artFetch.Fetch(plan.ArtURL)
		go ui.loadQueue()
	}
}

// render applies one plan to the widgets. Runs on the UI thread.
func (ui *RootUI) render(plan RenderPlan) {
	ui.updatingUI = true
	defer func() { ui.updatingUI = false }()

	if plan.NothingPlaying {
		if plan.ErrorText != "" {
			ui.trackLabel.SetText(ui.localization.GetText(KeyBackendError))
			ui.setStatus(plan.ErrorText)
		} else {
			ui.trackLabel.SetText(ui.localization.GetText(KeyNothingPlaying))
		}
		ui.timeLabel.SetText(plan.TimeLine)
		ui.progressSlide.SetValue(0)
		ui.playPauseBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPlay))
		ui.cassette.SetPlaying(false)
		ui.cassette.SetTrack("", "", "")
		ui.currentTrackURI = ""
		return
	}

	ui.trackLabel.SetText(plan.TrackLine)
	ui.timeLabel.SetText(plan.TimeLine)
	ui.currentTrackURI = plan.TrackURI

	if plan.IsPlaying {
		ui.playPauseBtn.SetText(IconPause + " " + ui.localization.GetText(KeyPause))
	} else {
		ui.playPauseBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPlay))
	}

	if plan.MoveSlider {
		ui.progressSlide.SetValue(plan.SliderFrac * 1000)
	}
	if plan.SetVolume {
		ui.volumeSlide.SetValue(float64(plan.Volume))
	}

	if plan.ShuffleOn {
		ui.shuffleBtn.SetText(IconShuffle + " On")
	} else {
		ui.shuffleBtn.SetText(IconShuffle + " Off")
	}
	ui.repeatSelect.SetSelected(ui.repeatLabel(plan.RepeatMode))

	ui.applyTheme(plan.ThemeName)
	ui.cassette.SetTrack(ui.titleFromTrackLine(plan.TrackLine), plan.TrackLine, plan.MoodLine)
	ui.cassette.SetPlaying(plan.IsPlaying)
}

func (ui *RootUI) titleFromTrackLine(line string) string {
	// The label strip is narrow; the full line goes on the second row.
	if len(line) > 30 {
		return line[:30] + "…"
	}
	return line
}

// applyTheme switches the cassette palette, honoring a fixed choice from
// settings over the detected genre.
func (ui *RootUI) applyTheme(detected string) {
	name := detected
	if choice := ui.settings.GetTheme(); choice != settings.ThemeAuto {
		name = string(choice)
	}
	if name == ui.themeName {
		return
	}
	ui.themeName = name
	ui.cassette.SetPalette(PaletteFor(name))
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.trackLabel = widget.NewLabel(ui.localization.GetText(KeyNothingPlaying))
	ui.trackLabel.Alignment = fyne.TextAlignCenter
	ui.trackLabel.Truncation = fyne.TextTruncateEllipsis

	ui.timeLabel = widget.NewLabel(BlankTimestamp + " / " + BlankTimestamp)
	ui.timeLabel.Alignment = fyne.TextAlignCenter

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	// Accent light strip, recolored in sync with the background hue. Animate
	// invokes the hook on the UI thread.
	ui.accentBar = canvas.NewRectangle(ui.background.AccentColor())
	ui.accentBar.SetMinSize(fyne.NewSize(0, AccentBarHeight))
	ui.accentBar.CornerRadius = AccentBarHeight / 2
	ui.background.OnAccent = func(c color.RGBA) {
		ui.accentBar.FillColor = c
		ui.accentBar.Refresh()
	}

	// Transport
	ui.prevBtn = widget.NewButton(IconPrevious, ui.onPrevClicked)
	ui.playPauseBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyPlay), ui.onPlayPauseClicked)
	ui.nextBtn = widget.NewButton(IconNext, ui.onNextClicked)
	transport := container.NewHBox(ui.prevBtn, ui.playPauseBtn, ui.nextBtn)

	// Progress slider: 0-1000, fraction of the track
	ui.progressSlide = widget.NewSlider(0, 1000)
	ui.progressSlide.OnChanged = func(float64) {
		if !ui.updatingUI && !ui.viewState.Dragging() {
			ui.viewState.BeginDrag()
		}
	}
	ui.progressSlide.OnChangeEnded = ui.onSeekEnded

	// Volume
	ui.volumeSlide = widget.NewSlider(0, 100)
	ui.volumeSlide.OnChangeEnded = ui.onVolumeEnded
	volumeRow := container.NewBorder(nil, nil, widget.NewLabel(IconVolume), nil, ui.volumeSlide)

	// Shuffle / repeat
	ui.shuffleBtn = widget.NewButton(IconShuffle+" Off", ui.onShuffleClicked)
	ui.repeatSelect = widget.NewSelect([]string{
		ui.repeatLabel(model.RepeatOff),
		ui.repeatLabel(model.RepeatTrack),
		ui.repeatLabel(model.RepeatContext),
	}, ui.onRepeatChanged)
	ui.repeatSelect.SetSelected(ui.repeatLabel(model.RepeatOff))

	// Devices
	ui.deviceSelect = widget.NewSelect(nil, ui.onDeviceSelected)
	ui.deviceSelect.PlaceHolder = IconDevice + " " + ui.localization.GetText(KeyDevices)

	modeRow := container.NewHBox(ui.shuffleBtn, widget.NewLabel(IconRepeat), ui.repeatSelect, ui.deviceSelect)

	// Playlists
	ui.playlistList = widget.NewList(
		func() int { return len(ui.playlists) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.playlists) {
				obj.(*widget.Label).SetText(ui.playlists[id].DisplayName())
			}
		},
	)
	ui.playlistList.OnSelected = ui.onPlaylistSelected

	ui.playlistTracks = widget.NewList(
		func() int { return len(ui.tracks) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.tracks) {
				obj.(*widget.Label).SetText(ui.tracks[id].DisplayName())
			}
		},
	)
	ui.playlistTracks.OnSelected = func(id widget.ListItemID) { ui.selectedTrack = id }

	playlistButtons := container.NewHBox(
		widget.NewButton(ui.localization.GetText(KeyPlayPlaylist), ui.onPlayPlaylist),
		widget.NewButton(ui.localization.GetText(KeyOpenPlaylist), ui.onOpenPlaylist),
		widget.NewButton(ui.localization.GetText(KeyAddCurrent), ui.onAddCurrentToPlaylist),
		widget.NewButton(ui.localization.GetText(KeyRemoveSelected), ui.onRemoveSelectedTrack),
	)

	playlistPane := container.NewBorder(
		widget.NewLabel(IconPlaylist+" "+ui.localization.GetText(KeyPlaylists)),
		playlistButtons,
		nil, nil,
		container.NewHSplit(ui.playlistList, ui.playlistTracks),
	)

	// Queue
	ui.queueList = widget.NewList(
		func() int { return len(ui.queue) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ui.queue) {
				obj.(*widget.Label).SetText(ui.queue[id].DisplayName())
			}
		},
	)
	queuePane := container.NewBorder(
		widget.NewLabel(IconQueue+" "+ui.localization.GetText(KeyQueue)),
		widget.NewButton(ui.localization.GetText(KeyClearQueue), ui.onClearQueue),
		nil, nil,
		ui.queueList,
	)

	deck := container.NewVBox(
		ui.trackLabel,
		container.NewCenter(ui.cassette.Container()),
		ui.accentBar,
		ui.progressSlide,
		ui.timeLabel,
		container.NewCenter(transport),
		modeRow,
		volumeRow,
		ui.statusLabel,
	)

	lists := container.NewHSplit(playlistPane, queuePane)
	content := container.NewBorder(deck, nil, nil, nil, lists)

	ui.window.SetContent(container.NewStack(ui.background.Object(), content))
	ui.window.Resize(fyne.NewSize(WindowMinWidth*2, WindowMinHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
}

func (ui *RootUI) repeatLabel(mode model.RepeatMode) string {
	switch mode {
	case model.RepeatTrack:
		return ui.localization.GetText(KeyRepeatTrack)
	case model.RepeatContext:
		return ui.localization.GetText(KeyRepeatContext)
	default:
		return ui.localization.GetText(KeyRepeatOff)
	}
}

func (ui *RootUI) repeatModeFromLabel(label string) model.RepeatMode {
	switch label {
	case ui.localization.GetText(KeyRepeatTrack):
		return model.RepeatTrack
	case ui.localization.GetText(KeyRepeatContext):
		return model.RepeatContext
	default:
		return model.RepeatOff
	}
}

// setStatus shows a status message that clears itself after a few seconds.
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)

	ui.statusTimerMu.Lock()
	defer ui.statusTimerMu.Unlock()
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
	}
	ui.statusTimer = time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() { ui.statusLabel.SetText("") })
	})
}

// action runs one control call off the UI thread, reports the outcome in the
// status line, and kicks the poller so the window reflects the result.
func (ui *RootUI) action(okText string, call func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		err := call(ctx)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Action failed: %v", err)
				ui.setStatus(IconError + " " + err.Error())
			} else {
				ui.setStatus(okText)
			}
		})
		ui.poller.Kick()
	}()
}

// ---------- UI callbacks: playback ----------

func (ui *RootUI) onPrevClicked() {
	ui.action(ui.localization.GetText(KeyPreviousTrack), ui.client.Previous)
}

func (ui *RootUI) onNextClicked() {
	ui.action(ui.localization.GetText(KeyNextTrack), ui.client.Next)
}

func (ui *RootUI) onPlayPauseClicked() {
	if ui.viewState.LastPlaying() {
		ui.action(ui.localization.GetText(KeyPause), ui.client.Pause)
	} else {
		ui.action(ui.localization.GetText(KeyPlay), ui.client.Play)
	}
}

func (ui *RootUI) onSeekEnded(value float64) {
	// SetValue fires this too; only a real drag release may seek.
	if ui.updatingUI || !ui.viewState.Dragging() {
		return
	}
	seekMs, ok := ui.viewState.EndDrag(value / 1000)
	if !ok {
		return
	}
	ui.action(ui.localization.GetText(KeySeek), func(ctx context.Context) error {
		return ui.client.Seek(ctx, seekMs)
	})
}

func (ui *RootUI) onVolumeEnded(value float64) {
	if ui.updatingUI {
		return
	}
	percent := int(value)
	ui.action("Volume "+strconv.Itoa(percent)+"%", func(ctx context.Context) error {
		return ui.client.SetVolume(ctx, percent)
	})
}

func (ui *RootUI) onShuffleClicked() {
	target := !ui.shuffleOn()
	key := KeyShuffleOff
	if target {
		key = KeyShuffleOn
	}
	ui.action(ui.localization.GetText(key), func(ctx context.Context) error {
		return ui.client.SetShuffle(ctx, target)
	})
}

func (ui *RootUI) shuffleOn() bool {
	return ui.shuffleBtn.Text == IconShuffle+" On"
}

func (ui *RootUI) onRepeatChanged(label string) {
	if ui.updatingUI {
		return
	}
	mode := ui.repeatModeFromLabel(label)
	ui.action(label, func(ctx context.Context) error {
		return ui.client.SetRepeat(ctx, string(mode))
	})
}

// ---------- Devices ----------

func (ui *RootUI) loadDevices() {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	devices, err := ui.client.Devices(ctx)
	if err != nil {
		log.Printf("Failed to load devices: %v", err)
		return
	}

	fyne.Do(func() {
		ui.devices = devices
		names := make([]string, len(devices))
		for i, d := range devices {
			names[i] = d.Name
			if d.IsActive {
				names[i] += " ●"
			}
		}
		ui.updatingUI = true
		ui.deviceSelect.Options = names
		ui.deviceSelect.Refresh()
		ui.updatingUI = false
	})
}

func (ui *RootUI) onDeviceSelected(string) {
	if ui.updatingUI {
		return
	}
	idx := ui.deviceSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.devices) {
		return
	}
	deviceID := ui.devices[idx].ID
	ui.action(ui.localization.GetText(KeyTransferred), func(ctx context.Context) error {
		return ui.client.TransferPlayback(ctx, deviceID)
	})
}

// selectedDeviceID returns the chosen device, "" when none is selected.
func (ui *RootUI) selectedDeviceID() string {
	idx := ui.deviceSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.devices) {
		return ""
	}
	return ui.devices[idx].ID
}

// ---------- Playlists ----------

func (ui *RootUI) loadPlaylists() {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	playlists, err := ui.client.Playlists(ctx)
	if err != nil {
		log.Printf("Failed to load playlists: %v", err)
		return
	}

	fyne.Do(func() {
		ui.playlists = playlists
		ui.playlistList.Refresh()
	})
}

func (ui *RootUI) onPlaylistSelected(id widget.ListItemID) {
	if id >= len(ui.playlists) {
		return
	}
	ui.selectedIdx = id
	go ui.loadPlaylistTracks(ui.playlists[id].ID)
}

func (ui *RootUI) loadPlaylistTracks(playlistID string) {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	tracks, err := ui.client.PlaylistTracks(ctx, playlistID)
	if err != nil {
		log.Printf("Failed to load playlist tracks: %v", err)
		fyne.Do(func() { ui.setStatus(IconError + " " + err.Error()) })
		return
	}

	fyne.Do(func() {
		ui.tracks = tracks
		ui.selectedTrack = -1
		ui.playlistTracks.Refresh()
	})
}

func (ui *RootUI) onPlayPlaylist() {
	if ui.selectedIdx < 0 || ui.selectedIdx >= len(ui.playlists) {
		ui.setStatus(ui.localization.GetText(KeySelectPlaylist))
		return
	}
	playlistID := ui.playlists[ui.selectedIdx].ID
	deviceID := ui.selectedDeviceID()
	ui.action(ui.localization.GetText(KeyPlayingPlaylist), func(ctx context.Context) error {
		return ui.client.PlayPlaylist(ctx, playlistID, deviceID)
	})
}

func (ui *RootUI) onOpenPlaylist() {
	if ui.selectedIdx < 0 || ui.selectedIdx >= len(ui.playlists) {
		ui.setStatus(ui.localization.GetText(KeySelectPlaylist))
		return
	}
	external := ui.playlists[ui.selectedIdx].ExternalURL
	if external == "" {
		ui.setStatus(ui.localization.GetText(KeyNoPlaylistURL))
		return
	}

	parsed, err := url.Parse(external)
	if err != nil {
		ui.setStatus(IconError + " " + err.Error())
		return
	}
	if err := fyne.CurrentApp().OpenURL(parsed); err != nil {
		ui.setStatus(IconError + " " + err.Error())
		return
	}
	ui.setStatus(ui.localization.GetText(KeyOpenedPlaylist))
}

func (ui *RootUI) onAddCurrentToPlaylist() {
	if ui.selectedIdx < 0 || ui.selectedIdx >= len(ui.playlists) {
		ui.setStatus(ui.localization.GetText(KeySelectPlaylist))
		return
	}
	if ui.currentTrackURI == "" {
		ui.setStatus(ui.localization.GetText(KeyNoCurrentTrack))
		return
	}
	playlistID := ui.playlists[ui.selectedIdx].ID
	trackURI := ui.currentTrackURI
	ui.action(ui.localization.GetText(KeyTrackAdded), func(ctx context.Context) error {
		if err := ui.client.AddPlaylistTrack(ctx, playlistID, trackURI); err != nil {
			return err
		}
		go ui.loadPlaylistTracks(playlistID)
		return nil
	})
}

func (ui *RootUI) onRemoveSelectedTrack() {
	if ui.selectedIdx < 0 || ui.selectedIdx >= len(ui.playlists) {
		ui.setStatus(ui.localization.GetText(KeySelectPlaylist))
		return
	}
	if ui.selectedTrack < 0 || ui.selectedTrack >= len(ui.tracks) {
		ui.setStatus(ui.localization.GetText(KeySelectTrack))
		return
	}
	playlistID := ui.playlists[ui.selectedIdx].ID
	trackURI := ui.tracks[ui.selectedTrack].URI
	ui.action(ui.localization.GetText(KeyTrackRemoved), func(ctx context.Context) error {
		if err := ui.client.RemovePlaylistTrack(ctx, playlistID, trackURI); err != nil {
			return err
		}
		go ui.loadPlaylistTracks(playlistID)
		return nil
	})
}

// ---------- Queue ----------

func (ui *RootUI) loadQueue() {
	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	queue, err := ui.client.Queue(ctx)
	if err != nil {
		log.Printf("Failed to load queue: %v", err)
		return
	}

	fyne.Do(func() {
		ui.queue = queue
		ui.queueList.Refresh()
	})
}

func (ui *RootUI) onClearQueue() {
	// The provider rejects this as a limitation; only that case gets the
	// softer wording. The queue is reloaded regardless.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		err := ui.client.ClearQueue(ctx)
		fyne.Do(func() {
			switch {
			case err == nil:
				ui.setStatus(ui.localization.GetText(KeyClearQueue))
			case errors.Is(err, api.ErrUnsupported):
				ui.setStatus(ui.localization.GetText(KeyQueueCleared))
			default:
				ui.setStatus(IconError + " " + err.Error())
			}
		})
		ui.loadQueue()
	}()
}

// ---------- Settings ----------

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// The new backend URL and interval apply on next launch; theme and
		// language apply immediately.
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
		ui.createMenu()
		ui.themeName = ""
		ui.applyTheme(ThemeNameDefault)
	}).Show()
}
