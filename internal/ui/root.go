package ui

import (
	"context"
	"net/url"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/config"
	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/logging"
	"github.com/ytget/tubeflow/internal/model"
	"github.com/ytget/tubeflow/internal/palette"
	"github.com/ytget/tubeflow/internal/platform"
	"github.com/ytget/tubeflow/internal/session"
)

// RootUI is the main window. It implements session.View.
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	console      *logging.Console
	logger       *zap.Logger
	controller   *session.Controller
	previewer    *platform.PlaylistPreviewer
	installer    engineInstaller
	form         *FormState

	ctx    context.Context
	cancel context.CancelFunc

	settingsBtn   *widget.Button
	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	playlistCheck *widget.Check
	folderLabel   *widget.Label
	folderEntry   *widget.Entry
	browseBtn     *widget.Button
	openBtn       *widget.Button
	formatLabel   *widget.Label
	formatSelect  *widget.Select
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	progressBar   *widget.ProgressBar
	downloadBtn   *widget.Button
	consoleLabel  *widget.Label
	consoleText   *widget.Entry

	themeRoot   *windowNode
	unsubscribe func()
}

var _ session.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, downloader download.Downloader, console *logging.Console, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	if console == nil {
		console = logging.NewConsole(logging.DefaultConsoleLines)
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())
	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		console:      console,
		logger:       logger.Named("ui"),
		previewer:    platform.NewPlaylistPreviewer(),
		installer:    download.NewEngineInstaller(logger),
		form:         NewFormState(),
		ctx:          ctx,
		cancel:       cancel,
	}
	ui.previewer.SetLimit(PlaylistPreviewLimit)
	ui.controller = session.NewController(downloader, ui, fyne.Do, logger)
	ui.form.Load(settings)

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	}

	ui.setupUI()
	ui.applyTheme(settings.GetTheme())

	window.SetCloseIntercept(ui.onClose)
	return ui
}

// Start runs the startup tasks that need the event loop to be running
func (ui *RootUI) Start() {
	go bootstrapEngine(ui.ctx, ui.installer, ui.localization, ui, fyne.Do, ui.logger)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)
	settingsNode := newThemedNode(palette.RoleButton, ui.settingsBtn)
	top := newThemedNode(palette.RolePanel, container.NewHBox(settingsNode.Object()), settingsNode)

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyURL))
	ui.urlEntry = widget.NewEntryWithData(ui.form.URL)
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.playlistCheck = widget.NewCheckWithData(ui.localization.GetText(KeyPlaylist), ui.form.Playlist)

	ui.folderLabel = widget.NewLabel(ui.localization.GetText(KeyFolder))
	ui.folderEntry = widget.NewEntryWithData(ui.form.Folder)
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseFolder)
	ui.openBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyOpenFolder), theme.FolderOpenIcon(), ui.onOpenFolder)
	folderEntryNode := newThemedNode(palette.RoleInput, ui.folderEntry)
	browseNode := newThemedNode(palette.RoleButton, ui.browseBtn)
	openNode := newThemedNode(palette.RoleButton, ui.openBtn)
	folderRow := newThemedNode(palette.RolePanel,
		container.NewBorder(nil, nil, nil, container.NewHBox(browseNode.Object(), openNode.Object()), folderEntryNode.Object()),
		folderEntryNode, browseNode, openNode)

	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyFormat))
	ui.formatSelect = widget.NewSelect(formatOptions(), func(s string) {
		_ = ui.form.Format.Set(s)
	})
	format, _ := ui.form.Format.Get()
	ui.formatSelect.SetSelected(format)

	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQuality))
	ui.qualitySelect = widget.NewSelect(qualityOptions(), func(s string) {
		_ = ui.form.Quality.Set(s)
	})
	quality, _ := ui.form.Quality.Get()
	ui.qualitySelect.SetSelected(quality)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = ProgressMax

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	githubNode := newThemedNode(palette.RoleButton, widget.NewButton("GitHub", func() { ui.openLink(GitHubURL) }))
	instagramNode := newThemedNode(palette.RoleButton, widget.NewButton("Instagram", func() { ui.openLink(InstagramURL) }))
	social := newThemedNode(palette.RolePanel,
		container.NewCenter(container.NewHBox(githubNode.Object(), instagramNode.Object())),
		githubNode, instagramNode)

	ui.consoleLabel = widget.NewLabel(ui.localization.GetText(KeyConsole))
	ui.consoleText = newConsoleView(ConsoleMinRows)
	ui.consoleText.SetText(ui.console.Text())
	ui.unsubscribe = ui.console.Subscribe(func(line string) {
		fyne.Do(func() {
			appendConsoleLine(ui.consoleText, line)
		})
	})

	nodes := []*themedNode{
		top,
		newThemedNode(palette.RoleLabel, ui.urlLabel),
		newThemedNode(palette.RoleInput, ui.urlEntry),
		newThemedNode(palette.RoleToggle, ui.playlistCheck),
		newThemedNode(palette.RoleLabel, ui.folderLabel),
		folderRow,
		newThemedNode(palette.RoleLabel, ui.formatLabel),
		newThemedNode(palette.RoleInput, ui.formatSelect),
		newThemedNode(palette.RoleLabel, ui.qualityLabel),
		newThemedNode(palette.RoleInput, ui.qualitySelect),
		newThemedNode(palette.RolePanel, ui.progressBar),
		newThemedNode(palette.RoleButton, container.NewCenter(ui.downloadBtn)),
		social,
		newThemedNode(palette.RoleLabel, ui.consoleLabel),
	}
	consoleNode := newThemedNode(palette.RoleInput, ui.consoleText)

	form := container.NewVBox()
	children := make([]palette.Node, 0, len(nodes)+1)
	for _, n := range nodes {
		form.Add(n.Object())
		children = append(children, n)
	}
	children = append(children, consoleNode)

	content := container.NewBorder(form, nil, nil, nil, consoleNode.Object())
	ui.themeRoot = newWindowNode(ui.app, container.NewPadded(content), children...)

	ui.window.SetContent(ui.themeRoot.Object())
	ui.window.Resize(MainWindowSize)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	options := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(options[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.settings.GetLanguage() == code
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
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.settingsBtn.SetText(IconSettings + " " + l.GetText(KeySettings))
	ui.urlLabel.SetText(l.GetText(KeyURL))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.playlistCheck.Text = l.GetText(KeyPlaylist)
	ui.playlistCheck.Refresh()
	ui.folderLabel.SetText(l.GetText(KeyFolder))
	ui.browseBtn.SetText(l.GetText(KeyBrowse))
	ui.openBtn.SetText(l.GetText(KeyOpenFolder))
	ui.formatLabel.SetText(l.GetText(KeyFormat))
	ui.qualityLabel.SetText(l.GetText(KeyQuality))
	ui.downloadBtn.SetText(l.GetText(KeyDownload))
	ui.consoleLabel.SetText(l.GetText(KeyConsole))
}

// applyTheme recolors the window and records the choice
func (ui *RootUI) applyTheme(t model.Theme) {
	n := palette.Apply(ui.themeRoot, palette.For(t), palette.DefaultDepth)
	ui.controller.SetTheme(t)
	ui.settings.SetTheme(t)
	ui.logger.Debug("theme applied", zap.String("theme", string(t)), zap.Int("nodes", n))
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	req := ui.form.Request()
	ui.form.Save(ui.settings)

	if _, err := ui.controller.Submit(ui.ctx, req); err != nil {
		return
	}
	ui.logger.Info("download started", zap.Stringer("request", req))

	if req.Playlist && platform.IsPlaylistURL(req.URL) {
		go ui.previewPlaylist(req.URL)
	}
}

// previewPlaylist lists the playlist entries into the console
func (ui *RootUI) previewPlaylist(rawURL string) {
	preview, err := ui.previewer.Preview(ui.ctx, rawURL)
	if err != nil {
		ui.logger.Warn("playlist preview failed", zap.Error(err))
		return
	}
	ui.logger.Info("playlist", zap.String("title", preview.Title), zap.Int("entries", preview.Len()))
	for i, e := range preview.Entries {
		ui.logger.Info("playlist entry", zap.Int("index", i+1), zap.String("title", e.Title), zap.String("url", e.URL))
	}
}

// onBrowseFolder opens the directory picker
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.logger.Warn("folder picker failed", zap.Error(err))
			return
		}
		if uri == nil {
			return
		}
		_ = ui.form.Folder.Set(uri.Path())
	}, ui.window)
}

// onOpenFolder reveals the chosen folder in the file manager
func (ui *RootUI) onOpenFolder() {
	folder, _ := ui.form.Folder.Get()
	if err := platform.RevealDirectory(folder); err != nil {
		ui.logger.Warn("cannot open folder", zap.String("folder", folder), zap.Error(err))
		ui.Notify(session.NoticeError, download.TitleError, err.Error())
	}
}

// onShowSettings opens the settings window
func (ui *RootUI) onShowSettings() {
	NewSettingsWindow(ui.app, ui.settings, ui.localization, ui.console, ui.controller.State().Theme, SettingsCallbacks{
		OnTheme:    ui.applyTheme,
		OnLanguage: ui.onLanguageChange,
	}).Show()
}

func (ui *RootUI) openLink(raw string) {
	u, err := url.Parse(raw)
	if err != nil {
		ui.logger.Error("invalid link", zap.String("url", raw), zap.Error(err))
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		ui.logger.Warn("cannot open link", zap.String("url", raw), zap.Error(err))
	}
}

// onClose cancels an in-flight download before the window goes away
func (ui *RootUI) onClose() {
	ui.controller.Shutdown()
	ui.cancel()
	if ui.unsubscribe != nil {
		ui.unsubscribe()
	}
	ui.window.Close()
}

// SetControlsEnabled toggles the controls that must not change mid-download
func (ui *RootUI) SetControlsEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{ui.downloadBtn, ui.browseBtn, ui.urlEntry, ui.playlistCheck} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

// SetProgress moves the progress bar
func (ui *RootUI) SetProgress(percent float64) {
	ui.progressBar.SetValue(percent)
}

// SetPhase logs phase transitions
func (ui *RootUI) SetPhase(phase model.Phase) {
	ui.logger.Debug("phase", zap.Stringer("phase", phase))
}

// Notify shows a modal dialog
func (ui *RootUI) Notify(kind session.NoticeKind, title, message string) {
	switch kind {
	case session.NoticeError:
		ui.logger.Error(title, zap.String("message", message))
		content := container.NewHBox(widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(message))
		dialog.ShowCustom(title, ui.localization.GetText(KeyOK), content, ui.window)
	default:
		ui.logger.Info(title, zap.String("message", message), zap.Stringer("kind", kind))
		dialog.ShowInformation(title, message, ui.window)
	}
}

func formatOptions() []string {
	out := make([]string, 0, len(model.Formats()))
	for _, f := range model.Formats() {
		out = append(out, string(f))
	}
	return out
}

func qualityOptions() []string {
	out := make([]string, 0, len(model.Qualities()))
	for _, q := range model.Qualities() {
		out = append(out, string(q))
	}
	return out
}
