// Package language holds the static catalog of supported languages: display
// names used in translation prompts and the speech voices used for synthesis.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Auto marks a request whose source language should be inferred by the model.
const Auto = "auto"

// DefaultVoice is used when neither the code nor its primary subtag is known.
const DefaultVoice = "en-US-JennyNeural"

// Entry describes one catalog language.
type Entry struct {
	Code        string `json:"code"`
	DisplayName string `json:"name"`
	VoiceID     string `json:"voice,omitempty"`
}

var entries = []Entry{
	{Code: "zh-TW", DisplayName: "繁體中文", VoiceID: "zh-TW-HsiaoChenNeural"},
	{Code: "en-US", DisplayName: "英文", VoiceID: "en-US-JennyNeural"},
	{Code: "ja-JP", DisplayName: "日文", VoiceID: "ja-JP-NanamiNeural"},
	{Code: "ko-KR", DisplayName: "韓文", VoiceID: "ko-KR-SunHiNeural"},
	{Code: "fr-FR", DisplayName: "法文", VoiceID: "fr-FR-DeniseNeural"},
	{Code: "de-DE", DisplayName: "德文", VoiceID: "de-DE-KatjaNeural"},
	{Code: "es-ES", DisplayName: "西班牙文", VoiceID: "es-ES-ElviraNeural"},
	{Code: "it-IT", DisplayName: "義大利文", VoiceID: "it-IT-ElsaNeural"},
	{Code: "ru-RU", DisplayName: "俄文", VoiceID: "ru-RU-SvetlanaNeural"},
	{Code: "pt-PT", DisplayName: "葡萄牙文", VoiceID: "pt-PT-RaquelNeural"},
	{Code: "nl-NL", DisplayName: "荷蘭文", VoiceID: "nl-NL-ColetteNeural"},
}

var (
	byCode    = make(map[string]Entry, len(entries))
	byPrimary = make(map[string]Entry, len(entries))
)

func init() {
	for _, e := range entries {
		byCode[strings.ToLower(e.Code)] = e
		primary := PrimarySubtag(e.Code)
		if _, ok := byPrimary[primary]; !ok {
			byPrimary[primary] = e
		}
	}
}

// All returns a copy of the catalog in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds an entry by exact code, ignoring case.
func Lookup(code string) (Entry, bool) {
	e, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return e, ok
}

// DisplayName returns the human-readable name for code, or code itself when unknown.
func DisplayName(code string) string {
	if e, ok := Lookup(code); ok {
		return e.DisplayName
	}
	return code
}

// VoiceFor resolves the synthesis voice for a language code. Exact matches win,
// then the primary subtag ("en" of "en-GB"), then DefaultVoice.
func VoiceFor(code string) string {
	if e, ok := Lookup(code); ok && e.VoiceID != "" {
		return e.VoiceID
	}
	if e, ok := byPrimary[PrimarySubtag(code)]; ok && e.VoiceID != "" {
		return e.VoiceID
	}
	return DefaultVoice
}

// IsAuto reports whether code requests source-language auto-detection.
func IsAuto(code string) bool {
	code = strings.TrimSpace(code)
	return code == "" || strings.EqualFold(code, Auto)
}

// PrimarySubtag returns the base language of code ("zh" for "zh-TW"). Codes
// that are not valid BCP 47 tags fall back to the part before any "-" or "_".
func PrimarySubtag(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if tag, err := language.Parse(code); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			return base.String()
		}
	}
	if idx := strings.IndexAny(code, "-_"); idx >= 0 {
		return code[:idx]
	}
	return code
}
