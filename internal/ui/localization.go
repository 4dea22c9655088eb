package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyNothingPlaying  = "nothing_playing"
	KeyBackendError    = "backend_error"
	KeyPlay            = "play"
	KeyPause           = "pause"
	KeyNextTrack       = "next_track"
	KeyPreviousTrack   = "previous_track"
	KeySeek            = "seek"
	KeyShuffleOn       = "shuffle_on"
	KeyShuffleOff      = "shuffle_off"
	KeyRepeatOff       = "repeat_off"
	KeyRepeatTrack     = "repeat_track"
	KeyRepeatContext   = "repeat_context"
	KeyDevices         = "devices"
	KeyTransferred     = "transferred"
	KeyPlaylists       = "playlists"
	KeyQueue           = "queue"
	KeyPlayPlaylist    = "play_playlist"
	KeyOpenPlaylist    = "open_playlist"
	KeyAddCurrent      = "add_current"
	KeyRemoveSelected  = "remove_selected"
	KeyClearQueue      = "clear_queue"
	KeyQueueCleared    = "queue_cleared"
	KeyPlayingPlaylist = "playing_playlist"
	KeySelectPlaylist  = "select_playlist"
	KeySelectTrack     = "select_track"
	KeyNoCurrentTrack  = "no_current_track"
	KeyNoPlaylistURL   = "no_playlist_url"
	KeyTrackAdded      = "track_added"
	KeyTrackRemoved    = "track_removed"
	KeyOpenedPlaylist  = "opened_playlist"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyBackendURL      = "backend_url"
	KeyPollInterval    = "poll_interval"
	KeyLaunchDaemon    = "launch_daemon"
	KeyTheme           = "theme"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Tapedeck",
		KeyNothingPlaying:  "Nothing playing. Start playback in Spotify.",
		KeyBackendError:    "Error talking to backend",
		KeyPlay:            "Play",
		KeyPause:           "Pause",
		KeyNextTrack:       "Next track",
		KeyPreviousTrack:   "Previous track",
		KeySeek:            "Seek",
		KeyShuffleOn:       "Shuffle on",
		KeyShuffleOff:      "Shuffle off",
		KeyRepeatOff:       "Repeat: Off",
		KeyRepeatTrack:     "Repeat: Track",
		KeyRepeatContext:   "Repeat: Context",
		KeyDevices:         "Devices",
		KeyTransferred:     "Playback transferred",
		KeyPlaylists:       "Playlists",
		KeyQueue:           "Up next",
		KeyPlayPlaylist:    "Play playlist",
		KeyOpenPlaylist:    "Open in Spotify",
		KeyAddCurrent:      "Add current track",
		KeyRemoveSelected:  "Remove selected",
		KeyClearQueue:      "Clear queue",
		KeyQueueCleared:    "Tried to clear queue (Spotify API may not fully support this).",
		KeyPlayingPlaylist: "Playing playlist",
		KeySelectPlaylist:  "Select a playlist first",
		KeySelectTrack:     "Select a track to remove",
		KeyNoCurrentTrack:  "No current track",
		KeyNoPlaylistURL:   "No playlist URL",
		KeyTrackAdded:      "Added current track to playlist",
		KeyTrackRemoved:    "Removed track from playlist",
		KeyOpenedPlaylist:  "Opened playlist in Spotify",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyBackendURL:      "Backend URL",
		KeyPollInterval:    "Refresh interval (seconds)",
		KeyLaunchDaemon:    "Start tapedeckd automatically",
		KeyTheme:           "Cassette theme",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Tapedeck",
		KeyNothingPlaying:  "Ничего не играет. Запустите воспроизведение в Spotify.",
		KeyBackendError:    "Ошибка связи с сервером",
		KeyPlay:            "Играть",
		KeyPause:           "Пауза",
		KeyNextTrack:       "Следующий трек",
		KeyPreviousTrack:   "Предыдущий трек",
		KeySeek:            "Перемотка",
		KeyShuffleOn:       "Перемешивание включено",
		KeyShuffleOff:      "Перемешивание выключено",
		KeyRepeatOff:       "Повтор: выкл",
		KeyRepeatTrack:     "Повтор: трек",
		KeyRepeatContext:   "Повтор: контекст",
		KeyDevices:         "Устройства",
		KeyTransferred:     "Воспроизведение перенесено",
		KeyPlaylists:       "Плейлисты",
		KeyQueue:           "Далее",
		KeyPlayPlaylist:    "Играть плейлист",
		KeyOpenPlaylist:    "Открыть в Spotify",
		KeyAddCurrent:      "Добавить текущий трек",
		KeyRemoveSelected:  "Удалить выбранный",
		KeyClearQueue:      "Очистить очередь",
		KeyQueueCleared:    "Попытка очистить очередь (Spotify API может не поддерживать это).",
		KeyPlayingPlaylist: "Плейлист запущен",
		KeySelectPlaylist:  "Сначала выберите плейлист",
		KeySelectTrack:     "Выберите трек для удаления",
		KeyNoCurrentTrack:  "Нет текущего трека",
		KeyNoPlaylistURL:   "Нет ссылки на плейлист",
		KeyTrackAdded:      "Текущий трек добавлен в плейлист",
		KeyTrackRemoved:    "Трек удалён из плейлиста",
		KeyOpenedPlaylist:  "Плейлист открыт в Spotify",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyBackendURL:      "Адрес сервера",
		KeyPollInterval:    "Интервал обновления (сек)",
		KeyLaunchDaemon:    "Запускать tapedeckd автоматически",
		KeyTheme:           "Тема кассеты",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены!",
	}
}
