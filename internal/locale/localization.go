package locale

import "sync"

// DefaultLanguage is used when no language or "system" is configured
const DefaultLanguage = "ja"

// Localization manages UI text translations
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyInputPlaceholder  = "input_placeholder"
	KeyLineType          = "line_type"
	KeyConvert           = "convert"
	KeyCopy              = "copy"
	KeyPlay              = "play"
	KeyGenerating        = "generating"
	KeyResultPlaceholder = "result_placeholder"
	KeyConversionError   = "conversion_error"
	KeyCopied            = "copied"
	KeyNothingToCopy     = "nothing_to_copy"
	KeyNothingToPlay     = "nothing_to_play"
	KeyPlaybackStarted   = "playback_started"
	KeyPlaybackFailed    = "playback_failed"
	KeyVoiceFailed       = "voice_failed"
	KeyAudioTooSmall     = "audio_too_small"
	KeyServerURL         = "server_url"
	KeyMinAudioBytes     = "min_audio_bytes"
	KeyDiscardStale      = "discard_stale"
	KeyRequestTimeout    = "request_timeout"
	KeyPlayerCommand     = "player_command"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		lang = DefaultLanguage
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to the default language
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"ja": "日本語",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["ja"] = map[string]string{
		KeyAppTitle:          "子音ロック語プレイヤー",
		KeyFile:              "ファイル",
		KeySettings:          "設定",
		KeyLanguage:          "言語",
		KeyInputPlaceholder:  "ひらがなを入力してください",
		KeyLineType:          "行",
		KeyConvert:           "変換",
		KeyCopy:              "コピー",
		KeyPlay:              "再生",
		KeyGenerating:        "生成中...",
		KeyResultPlaceholder: "ここに変換結果が表示されます",
		KeyConversionError:   "エラーが発生しました",
		KeyCopied:            "コピーしました",
		KeyNothingToCopy:     "コピーする内容がありません",
		KeyNothingToPlay:     "再生するテキストがありません",
		KeyPlaybackStarted:   "音声を再生しています",
		KeyPlaybackFailed:    "音声の再生に失敗しました",
		KeyVoiceFailed:       "音声生成に失敗しました。音声サービスが起動しているか確認してください",
		KeyAudioTooSmall:     "音声データが不正です。音声生成に失敗しました",
		KeyServerURL:         "サーバーURL",
		KeyMinAudioBytes:     "最小音声サイズ (バイト)",
		KeyDiscardStale:      "古いレスポンスを破棄する",
		KeyRequestTimeout:    "タイムアウト (秒、0 で無制限)",
		KeyPlayerCommand:     "再生コマンド",
		KeySave:              "保存",
		KeyCancel:            "キャンセル",
		KeySettingsSaved:     "設定を保存しました",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Colock Player",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyInputPlaceholder:  "Enter hiragana text",
		KeyLineType:          "Row",
		KeyConvert:           "Convert",
		KeyCopy:              "Copy",
		KeyPlay:              "Play",
		KeyGenerating:        "Generating...",
		KeyResultPlaceholder: "The converted text appears here",
		KeyConversionError:   "An error occurred",
		KeyCopied:            "Copied to clipboard",
		KeyNothingToCopy:     "Nothing to copy",
		KeyNothingToPlay:     "Nothing to play",
		KeyPlaybackStarted:   "Playing voice",
		KeyPlaybackFailed:    "Audio playback failed",
		KeyVoiceFailed:       "Voice generation failed. Check that the speech service is running",
		KeyAudioTooSmall:     "Invalid audio data. Voice generation failed",
		KeyServerURL:         "Server URL",
		KeyMinAudioBytes:     "Minimum audio size (bytes)",
		KeyDiscardStale:      "Discard stale responses",
		KeyRequestTimeout:    "Timeout (seconds, 0 for none)",
		KeyPlayerCommand:     "Player command",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
	}
}
