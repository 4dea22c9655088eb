package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tapedeck/tapedeck/internal/settings"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *settings.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backendURLEntry   *widget.Entry
	pollIntervalEntry *widget.Entry
	launchDaemonCheck *widget.Check
	themeSelect       *widget.Select
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// confirmed save so the window can pick up the new backend URL and interval.
func NewSettingsDialog(s *settings.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     s,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.backendURLEntry = widget.NewEntry()
	sd.backendURLEntry.SetPlaceHolder(settings.DefaultBackendURL)

	sd.pollIntervalEntry = widget.NewEntry()
	sd.pollIntervalEntry.SetPlaceHolder("1-30")

	sd.launchDaemonCheck = widget.NewCheck("", nil)

	themeOptions := []string{}
	for _, choice := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(choice))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyBackendURL)+":"),
		sd.backendURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyPollInterval)+":"),
		sd.pollIntervalEntry,

		widget.NewLabel(sd.localization.GetText(KeyLaunchDaemon)+":"),
		sd.launchDaemonCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendURLEntry.SetText(sd.settings.GetBackendURL())
	sd.pollIntervalEntry.SetText(strconv.Itoa(int(sd.settings.GetPollInterval().Seconds())))
	sd.launchDaemonCheck.SetChecked(sd.settings.GetLaunchDaemon())
	sd.themeSelect.SetSelected(string(sd.settings.GetTheme()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.backendURLEntry.Text != "" {
		sd.settings.SetBackendURL(sd.backendURLEntry.Text)
	}

	if sd.pollIntervalEntry.Text != "" {
		if seconds, err := strconv.Atoi(sd.pollIntervalEntry.Text); err == nil {
			sd.settings.SetPollIntervalSeconds(seconds)
		}
	}

	sd.settings.SetLaunchDaemon(sd.launchDaemonCheck.Checked)

	if sd.themeSelect.Selected != "" {
		sd.settings.SetTheme(settings.ThemeChoice(sd.themeSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
