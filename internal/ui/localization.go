package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyURL             = "url"
	KeyEnterURL        = "enter_url"
	KeyPlaylist        = "playlist"
	KeyFolder          = "folder"
	KeyBrowse          = "browse"
	KeyOpenFolder      = "open_folder"
	KeyFormat          = "format"
	KeyQuality         = "quality"
	KeyDownload        = "download"
	KeyConsole         = "console"
	KeyTheme           = "theme"
	KeyLight           = "light"
	KeyDark            = "dark"
	KeyLanguage        = "language"
	KeyOK              = "ok"
	KeyInstallingTitle = "installing_title"
	KeyInstalling      = "installing"
	KeyInstalled       = "installed"
	KeyInstallFailed   = "install_failed"
)

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		lang = LangEnglish
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
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "YouTube Downloader",
		KeySettings:        "Settings",
		KeyURL:             "YouTube URL:",
		KeyEnterURL:        "https://www.youtube.com/watch?v=...",
		KeyPlaylist:        "Download as playlist",
		KeyFolder:          "Download Folder:",
		KeyBrowse:          "Browse",
		KeyOpenFolder:      "Open",
		KeyFormat:          "Format:",
		KeyQuality:         "Quality:",
		KeyDownload:        "Download",
		KeyConsole:         "Console:",
		KeyTheme:           "Theme:",
		KeyLight:           "Light",
		KeyDark:            "Dark",
		KeyLanguage:        "Language:",
		KeyOK:              "OK",
		KeyInstallingTitle: "Installing yt-dlp",
		KeyInstalling:      "yt-dlp is not installed. Installing now...",
		KeyInstalled:       "yt-dlp installed successfully.",
		KeyInstallFailed:   "Failed to install yt-dlp. Please install it manually.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Загрузчик YouTube",
		KeySettings:        "Настройки",
		KeyURL:             "URL YouTube:",
		KeyPlaylist:        "Скачать как плейлист",
		KeyFolder:          "Папка загрузки:",
		KeyBrowse:          "Обзор",
		KeyOpenFolder:      "Открыть",
		KeyFormat:          "Формат:",
		KeyQuality:         "Качество:",
		KeyDownload:        "Скачать",
		KeyConsole:         "Консоль:",
		KeyTheme:           "Тема:",
		KeyLight:           "Светлая",
		KeyDark:            "Тёмная",
		KeyLanguage:        "Язык:",
		KeyInstallingTitle: "Установка yt-dlp",
		KeyInstalling:      "yt-dlp не установлен. Устанавливаем...",
		KeyInstalled:       "yt-dlp успешно установлен.",
		KeyInstallFailed:   "Не удалось установить yt-dlp. Установите его вручную.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Baixador do YouTube",
		KeySettings:        "Configurações",
		KeyURL:             "URL do YouTube:",
		KeyPlaylist:        "Baixar como playlist",
		KeyFolder:          "Pasta de Download:",
		KeyBrowse:          "Navegar",
		KeyOpenFolder:      "Abrir",
		KeyFormat:          "Formato:",
		KeyQuality:         "Qualidade:",
		KeyDownload:        "Baixar",
		KeyConsole:         "Console:",
		KeyTheme:           "Tema:",
		KeyLight:           "Claro",
		KeyDark:            "Escuro",
		KeyLanguage:        "Idioma:",
		KeyInstallingTitle: "Instalando yt-dlp",
		KeyInstalling:      "yt-dlp não está instalado. Instalando agora...",
		KeyInstalled:       "yt-dlp instalado com sucesso.",
		KeyInstallFailed:   "Falha ao instalar yt-dlp. Instale manualmente.",
	}
}
