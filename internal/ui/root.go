package ui

import (
	"context"
	"errors"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/api"
	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/controller"
	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/logging"
	"github.com/ytget/colock-player/internal/model"
)

// PlayerFactory builds an audio player for a configured command line.
// An empty command selects the platform default.
type PlayerFactory func(command string) (controller.Player, error)

// unavailablePlayer reports why no player could be built each time playback starts
type unavailablePlayer struct {
	err error
}

func (p unavailablePlayer) Play(context.Context, string, func(model.TerminalEvent, error)) error {
	return p.err
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *locale.Localization
	logger       *zap.SugaredLogger

	inputEntry     *widget.Entry
	lineTypeSelect *widget.Select
	convertBtn     *widget.Button
	copyBtn        *widget.Button
	playBtn        *widget.Button
	resultLabel    *widget.Label
	notifier       *ToastNotifier

	handles    controller.HandleFactory
	newPlayer  PlayerFactory
	panel      *controller.ControlPanel
	results    *controller.ResultStore
	conversion *controller.ConversionController
	voice      *controller.VoicePlaybackController
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, handles controller.HandleFactory, newPlayer PlayerFactory, logger *zap.SugaredLogger) *RootUI {
	logger = logging.OrNop(logger)

	settings := config.NewSettings(app)

	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger,
		handles:      handles,
		newPlayer:    newPlayer,
		results:      controller.NewResultStore(),
	}

	window.SetTitle(localization.GetText(locale.KeyAppTitle))

	ui.setupUI()
	ui.results.SetUpdateCallback(ui.onResult)
	ui.buildControllers()

	logger.Infof("UI ready (server %s, language %s)", settings.GetServerURL(), localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(t(locale.KeyInputPlaceholder))
	ui.inputEntry.OnChanged = ui.onInputChanged
	// Trigger conversion when user presses Enter in the input field
	ui.inputEntry.OnSubmitted = func(string) {
		if ui.panel.State().ConvertEnabled {
			ui.onConvertClick()
		}
	}

	ui.lineTypeSelect = widget.NewSelect(model.LineTypeOptions(), func(selected string) {
		ui.settings.SetLineType(model.LineType(selected))
	})
	ui.lineTypeSelect.SetSelected(string(ui.settings.GetLineType()))

	ui.convertBtn = widget.NewButton(t(locale.KeyConvert), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	ui.copyBtn = widget.NewButton(t(locale.KeyCopy), ui.onCopyClick)
	ui.playBtn = widget.NewButton(t(locale.KeyPlay), ui.onPlayClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	lineType := container.NewGridWrap(fyne.NewSize(LineTypeSelectWidth, ui.lineTypeSelect.MinSize().Height), ui.lineTypeSelect)
	inputRow := container.NewBorder(nil, nil, left, container.NewHBox(lineType, ui.convertBtn), ui.inputEntry)

	ui.notifier = NewToastNotifier(ui.window)

	ui.resultLabel = widget.NewLabel(t(locale.KeyResultPlaceholder))
	ui.resultLabel.Wrapping = fyne.TextWrapWord
	ui.resultLabel.Importance = widget.LowImportance
	ui.resultLabel.TextStyle = fyne.TextStyle{Bold: true}

	resultArea := container.NewBorder(nil, container.NewHBox(ui.copyBtn, ui.playBtn), nil, nil,
		container.NewVScroll(ui.resultLabel))

	ui.panel = controller.NewControlPanel(
		NewButtonControl(ui.convertBtn),
		NewButtonControl(ui.copyBtn),
		NewButtonControl(ui.playBtn),
		ui.localization,
	)

	content := container.NewBorder(
		container.NewVBox(inputRow, ui.notifier.Container()), // top
		nil, // bottom
		nil, // left
		nil, // right
		resultArea,
	)
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// buildControllers (re)creates the API client and controllers from the
// current settings. The result store and panel survive a rebuild.
func (ui *RootUI) buildControllers() {
	opts := ui.settings.Options()

	client := api.NewClient(opts.ServerURL, api.WithLogger(ui.logger))
	ctlOpts := append(controller.FromConfig(opts), controller.WithLogger(ui.logger))

	var player controller.Player
	if ui.newPlayer != nil {
		p, err := ui.newPlayer(opts.PlayerCommand)
		if err != nil {
			ui.logger.Warnf("Audio player unavailable: %v", err)
			p = unavailablePlayer{err: err}
		}
		player = p
	} else {
		player = unavailablePlayer{err: errors.New("no audio player configured")}
	}

	ui.conversion = controller.NewConversionController(client, ui.results, ui.panel, ui.notifier, ui.localization, ctlOpts...)
	ui.voice = controller.NewVoicePlaybackController(client, ui.results, ui.handles, player, ui.panel, ui.notifier, ui.localization, ctlOpts...)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	settingsItem := fyne.NewMenuItem(t(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(t(locale.KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(t(locale.KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
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
	ui.window.SetTitle(ui.localization.GetText(locale.KeyAppTitle))
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(locale.KeyInputPlaceholder))
	if _, published := ui.results.Result(); !published {
		ui.resultLabel.SetText(ui.localization.GetText(locale.KeyResultPlaceholder))
	}
	ui.panel.Refresh()
}

func (ui *RootUI) onInputChanged(text string) {
	ui.panel.SetHasInput(text != "")
}

// onConvertClick handles the convert button click
func (ui *RootUI) onConvertClick() {
	input := ui.inputEntry.Text
	lineType := model.LineType(ui.lineTypeSelect.Selected)
	go ui.convert(input, lineType)
}

// convert runs one conversion; the result reaches the label through onResult
func (ui *RootUI) convert(input string, lineType model.LineType) model.ConversionResult {
	return ui.conversion.Convert(context.Background(), input, lineType)
}

// onResult renders a published result
func (ui *RootUI) onResult(result model.ConversionResult) {
	fyne.Do(func() {
		if result.IsError() {
			ui.resultLabel.Importance = widget.DangerImportance
		} else {
			ui.resultLabel.Importance = widget.MediumImportance
		}
		ui.resultLabel.SetText(result.Display())
	})
}

// onCopyClick copies the result to the clipboard
func (ui *RootUI) onCopyClick() {
	ui.conversion.Copy(ui.app.Clipboard())
}

// onPlayClick starts a voice cycle in the background
func (ui *RootUI) onPlayClick() {
	go ui.play()
}

func (ui *RootUI) play() error {
	err := ui.voice.Play(context.Background())
	if err != nil {
		ui.logger.Debugf("Voice cycle ended early: %v", err)
	}
	return err
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.lineTypeSelect.SetSelected(string(ui.settings.GetLineType()))
	ui.refreshUITexts()
	ui.createMenu()
	ui.buildControllers()
	ui.notifier.Notify(controller.NoticeSuccess, ui.localization.GetText(locale.KeySettingsSaved))
}
