package language_test

import (
	"testing"

	"lingua/backend/internal/language"

	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	require.Equal(t, "英文", language.DisplayName("en-US"))
	require.Equal(t, "繁體中文", language.DisplayName("zh-tw"))
	require.Equal(t, "xx-XX", language.DisplayName("xx-XX"))
	require.Equal(t, "", language.DisplayName(""))
}

func TestVoiceFor(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"ja-JP", "ja-JP-NanamiNeural"},
		{"JA-jp", "ja-JP-NanamiNeural"},
		{"en-GB", "en-US-JennyNeural"},
		{"fr_CA", "fr-FR-DeniseNeural"},
		{"zh", "zh-TW-HsiaoChenNeural"},
		{"sw-KE", language.DefaultVoice},
		{"", language.DefaultVoice},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			require.Equal(t, tt.want, language.VoiceFor(tt.code))
		})
	}
}

func TestIsAuto(t *testing.T) {
	require.True(t, language.IsAuto("auto"))
	require.True(t, language.IsAuto("AUTO"))
	require.True(t, language.IsAuto(" "))
	require.False(t, language.IsAuto("en-US"))
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := language.All()
	require.Len(t, all, 11)
	all[0].DisplayName = "changed"
	require.Equal(t, "繁體中文", language.DisplayName("zh-TW"))
}

func TestPrimarySubtag(t *testing.T) {
	require.Equal(t, "zh", language.PrimarySubtag("zh-TW"))
	require.Equal(t, "en", language.PrimarySubtag(" EN-gb "))
	require.Equal(t, "fr", language.PrimarySubtag("fr_CA"))
	require.Equal(t, "auto", language.PrimarySubtag("auto"))
	require.Equal(t, "", language.PrimarySubtag(""))
}
