package handler_test

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lingua/backend/internal/handler"
	"lingua/backend/internal/language"
	"lingua/backend/internal/service"
	"lingua/backend/internal/service/mock"
	"lingua/backend/internal/service/speech"
)

type fakeAudioFiles map[string]string

func (f fakeAudioFiles) Path(name string) (string, error) {
	if p, ok := f[name]; ok {
		return p, nil
	}
	return "", service.ErrNotFound
}

func TestTranslateHandler_Translate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/translate", map[string]interface{}{
		"text":        "Hello",
		"target_lang": "zh-TW",
	})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Translate(gomock.Any(), service.TranslateInput{Text: "Hello", TargetLang: "zh-TW", Speak: true}).
		Return(service.TranslateOutput{TranslatedText: "哈囉", AudioURL: "/audio/abc.mp3"}, nil)

	require.NoError(t, h.Translate(c))

	var resp handler.TranslateResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "哈囉", resp.TranslatedText)
	require.Equal(t, "哈囉", resp.Translation)
	require.Equal(t, "/audio/abc.mp3", resp.AudioURL)
	require.Empty(t, resp.AudioError)
}

func TestTranslateHandler_Translate_SpeakOptOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)

	e := newTestEcho()
	req := newRawJSONRequest(http.MethodPost, "/translate", `{"text":"Hello","source_lang":"en-US","target_lang":"ja-JP","speak":false}`)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Translate(gomock.Any(), service.TranslateInput{Text: "Hello", SourceLang: "en-US", TargetLang: "ja-JP", Speak: false}).
		Return(service.TranslateOutput{TranslatedText: "こんにちは"}, nil)

	require.NoError(t, h.Translate(c))

	var resp map[string]interface{}
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "こんにちは", resp["translated_text"])
	_, hasAudio := resp["audio_url"]
	require.False(t, hasAudio)
}

func TestTranslateHandler_Translate_AudioDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/translate", map[string]interface{}{"text": "Hello"})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Translate(gomock.Any(), gomock.Any()).
		Return(service.TranslateOutput{TranslatedText: "Hello", AudioError: service.AudioErrorMessage}, nil)

	require.NoError(t, h.Translate(c))

	var resp handler.TranslateResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "Hello", resp.TranslatedText)
	require.Equal(t, "語音合成失敗", resp.AudioError)
	require.Empty(t, resp.AudioURL)
}

func TestTranslateHandler_Translate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "empty", err: fmt.Errorf("%w: %w", service.ErrInvalid, service.ErrEmptyInput), status: http.StatusBadRequest, message: "請輸入要翻譯的文字"},
		{name: "unavailable", err: service.ErrServiceUnavailable, status: http.StatusInternalServerError, message: "翻譯服務未設定"},
		{name: "upstream", err: fmt.Errorf("%w: status 401", service.ErrUpstream), status: http.StatusInternalServerError, message: "翻譯過程發生錯誤"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockTranslationService(ctrl)
			h := handler.NewTranslateHandlerHelper(mockService, nil)

			e := newTestEcho()
			req := newJSONRequest(http.MethodPost, "/translate", map[string]interface{}{"text": "x"})
			c, rec := newTestContext(e, req)

			mockService.EXPECT().Translate(gomock.Any(), gomock.Any()).Return(service.TranslateOutput{}, tc.err)

			require.NoError(t, h.Translate(c))

			assertErrorMessage(t, rec, tc.status, tc.message)
			require.NotContains(t, rec.Body.String(), "401")
		})
	}
}

func TestTranslateHandler_Translate_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)

	e := newTestEcho()
	req := newRawJSONRequest(http.MethodPost, "/translate", `{"text":`)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Translate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslateHandler_TTS(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/tts", map[string]string{"text": "哈囉", "lang": "zh-TW"})
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Synthesize(gomock.Any(), "哈囉", "zh-TW").
		Return(&speech.Audio{Data: []byte("ID3"), ContentType: speech.ContentTypeMPEG, Extension: ".mp3"}, nil)

	require.NoError(t, h.TTS(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "inline")
	require.Equal(t, "ID3", rec.Body.String())
}

func TestTranslateHandler_TTS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "empty", err: service.ErrInvalid, status: http.StatusBadRequest, message: "請輸入要朗讀的文字"},
		{name: "unavailable", err: service.ErrServiceUnavailable, status: http.StatusInternalServerError, message: "語音服務未設定"},
		{name: "upstream", err: service.ErrUpstream, status: http.StatusInternalServerError, message: "語音合成失敗"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockTranslationService(ctrl)
			h := handler.NewTranslateHandlerHelper(mockService, nil)

			e := newTestEcho()
			req := newJSONRequest(http.MethodPost, "/tts", map[string]string{"text": "x"})
			c, rec := newTestContext(e, req)

			mockService.EXPECT().Synthesize(gomock.Any(), "x", "").Return(nil, tc.err)

			require.NoError(t, h.TTS(c))

			assertErrorMessage(t, rec, tc.status, tc.message)
		})
	}
}

func TestTranslateHandler_Audio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("mp3-bytes"), 0o644))

	h := handler.NewTranslateHandlerHelper(nil, fakeAudioFiles{"clip.mp3": path})
	e := newTestEcho()

	t.Run("found", func(t *testing.T) {
		req := newJSONRequest(http.MethodGet, "/audio/clip.mp3", nil)
		c, rec := newTestContext(e, req)
		withParam(c, "filename", "clip.mp3")

		require.NoError(t, h.Audio(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "mp3-bytes", rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		req := newJSONRequest(http.MethodGet, "/audio/nope.mp3", nil)
		c, rec := newTestContext(e, req)
		withParam(c, "filename", "nope.mp3")

		require.NoError(t, h.Audio(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTranslateHandler_LanguagesAndStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().Languages().Return([]language.Entry{{Code: "zh-TW", DisplayName: "繁體中文", VoiceID: "zh-TW-HsiaoChenNeural"}})

	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/languages", nil))
	require.NoError(t, h.Languages(c))
	var langs []handler.LanguageResponse
	assertJSONResponse(t, rec, http.StatusOK, &langs)
	require.Len(t, langs, 1)
	require.Equal(t, "繁體中文", langs[0].Name)

	mockService.EXPECT().Status(gomock.Any(), false).Return(service.Status{Translation: true, Provider: "openai", Speech: false, Strategy: "none"})

	c, rec = newTestContext(e, newJSONRequest(http.MethodGet, "/status", nil))
	require.NoError(t, h.Status(c))
	var status handler.StatusResponse
	assertJSONResponse(t, rec, http.StatusOK, &status)
	require.True(t, status.Translation)
	require.Equal(t, "openai", status.Provider)
	require.Equal(t, "none", status.Strategy)
	require.NotContains(t, rec.Body.String(), "translation_check")
}

func TestTranslateHandler_StatusCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslateHandlerHelper(mockService, nil)
	e := newTestEcho()

	mockService.EXPECT().Status(gomock.Any(), true).Return(service.Status{
		Translation:      true,
		Provider:         "openai",
		Strategy:         "azure",
		Speech:           true,
		Proxy:            true,
		TranslationCheck: service.CheckOK,
		ProxyCheck:       service.CheckFailed,
	})

	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/status?check=1", nil))
	require.NoError(t, h.Status(c))
	var status handler.StatusResponse
	assertJSONResponse(t, rec, http.StatusOK, &status)
	require.True(t, status.Proxy)
	require.Equal(t, "ok", status.TranslationCheck)
	require.Equal(t, "failed", status.ProxyCheck)
}
