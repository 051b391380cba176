package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry     *widget.Entry
	minAudioEntry      *widget.Entry
	timeoutEntry       *widget.Entry
	playerCommandEntry *widget.Entry
	lineTypeSelect     *widget.Select
	languageSelect     *widget.Select
	discardStaleCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written.
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
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
	t := sd.localization.GetText

	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.minAudioEntry = widget.NewEntry()
	sd.minAudioEntry.SetPlaceHolder(strconv.Itoa(config.DefaultMinAudioBytes))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0")

	sd.playerCommandEntry = widget.NewEntry()
	sd.playerCommandEntry.SetPlaceHolder("auto")

	sd.lineTypeSelect = widget.NewSelect(model.LineTypeOptions(), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.discardStaleCheck = widget.NewCheck(t(locale.KeyDiscardStale), nil)

	form := widget.NewForm(
		widget.NewFormItem(t(locale.KeyServerURL), sd.serverURLEntry),
		widget.NewFormItem(t(locale.KeyLineType), sd.lineTypeSelect),
		widget.NewFormItem(t(locale.KeyMinAudioBytes), sd.minAudioEntry),
		widget.NewFormItem(t(locale.KeyRequestTimeout), sd.timeoutEntry),
		widget.NewFormItem(t(locale.KeyPlayerCommand), sd.playerCommandEntry),
		widget.NewFormItem(t(locale.KeyLanguage), sd.languageSelect),
		widget.NewFormItem("", sd.discardStaleCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(locale.KeySettings),
		t(locale.KeySave),
		t(locale.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.minAudioEntry.SetText(strconv.Itoa(sd.settings.GetMinAudioBytes()))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / TimeoutEntryUnit)))
	sd.playerCommandEntry.SetText(sd.settings.GetPlayerCommand())
	sd.lineTypeSelect.SetSelected(string(sd.settings.GetLineType()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.discardStaleCheck.SetChecked(sd.settings.GetDiscardStale())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if url := strings.TrimSpace(sd.serverURLEntry.Text); url != "" {
		sd.settings.SetServerURL(url)
	}

	// Unparsable numbers keep the stored value
	if n, err := strconv.Atoi(strings.TrimSpace(sd.minAudioEntry.Text)); err == nil {
		sd.settings.SetMinAudioBytes(n)
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(time.Duration(secs) * TimeoutEntryUnit)
	}

	sd.settings.SetPlayerCommand(sd.playerCommandEntry.Text)

	if sd.lineTypeSelect.Selected != "" {
		sd.settings.SetLineType(model.LineType(sd.lineTypeSelect.Selected))
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetDiscardStale(sd.discardStaleCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
