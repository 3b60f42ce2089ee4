package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"lingua/backend/internal/language"
	"lingua/backend/internal/service"
)

const (
	msgEmptyText          = "請輸入要翻譯的文字"
	msgEmptySpeechText    = "請輸入要朗讀的文字"
	msgTranslationMissing = "翻譯服務未設定"
	msgTranslationFailed  = "翻譯過程發生錯誤"
	msgSpeechMissing      = "語音服務未設定"
	msgSpeechFailed       = "語音合成失敗"
	msgAudioNotFound      = "找不到音訊檔案"
)

// AudioFiles resolves stored audio names to paths on disk.
type AudioFiles interface {
	Path(name string) (string, error)
}

type TranslateHandler struct {
	service service.TranslationService
	audio   AudioFiles
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	// Speak defaults to true when omitted.
	Speak *bool `json:"speak"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Translation    string `json:"translation"`
	AudioURL       string `json:"audio_url,omitempty"`
	AudioError     string `json:"audio_error,omitempty"`
}

type ttsRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type languageResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Voice string `json:"voice,omitempty"`
}

type statusResponse struct {
	Translation      bool   `json:"translation"`
	Provider         string `json:"provider,omitempty"`
	Speech           bool   `json:"speech"`
	Strategy         string `json:"strategy"`
	Proxy            bool   `json:"proxy"`
	TranslationCheck string `json:"translation_check,omitempty"`
	ProxyCheck       string `json:"proxy_check,omitempty"`
}

func NewTranslateHandler(service service.TranslationService, audio AudioFiles) *TranslateHandler {
	return &TranslateHandler{service: service, audio: audio}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.POST("/tts", h.TTS)
	g.GET("/audio/:filename", h.Audio)
	g.GET("/languages", h.Languages)
	g.GET("/status", h.Status)
}

// Translate godoc
// @Summary Translate text and optionally synthesize speech
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and languages"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}

	speak := true
	if req.Speak != nil {
		speak = *req.Speak
	}

	out, err := h.service.Translate(c.Request().Context(), service.TranslateInput{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Speak:      speak,
	})
	if err != nil {
		return writeTranslateError(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{
		TranslatedText: out.TranslatedText,
		Translation:    out.TranslatedText,
		AudioURL:       out.AudioURL,
		AudioError:     out.AudioError,
	})
}

// TTS godoc
// @Summary Synthesize speech for text
// @Tags translate
// @Accept json
// @Produce audio/mpeg
// @Param request body ttsRequest true "Text and language"
// @Success 200 {file} binary
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /tts [post]
func (h *TranslateHandler) TTS(c echo.Context) error {
	var req ttsRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}

	audio, err := h.service.Synthesize(c.Request().Context(), req.Text, req.Lang)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalid):
			return writeError(c, http.StatusBadRequest, msgEmptySpeechText)
		case errors.Is(err, service.ErrServiceUnavailable):
			return writeError(c, http.StatusInternalServerError, msgSpeechMissing)
		default:
			return writeError(c, http.StatusInternalServerError, msgSpeechFailed)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="speech`+audio.Extension+`"`)
	return c.Blob(http.StatusOK, audio.ContentType, audio.Data)
}

// Audio godoc
// @Summary Download a synthesized clip
// @Tags translate
// @Produce audio/mpeg
// @Param filename path string true "Audio file name"
// @Success 200 {file} binary
// @Failure 404 {object} errorResponse
// @Router /audio/{filename} [get]
func (h *TranslateHandler) Audio(c echo.Context) error {
	path, err := h.audio.Path(c.Param("filename"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return writeError(c, http.StatusNotFound, msgAudioNotFound)
		}
		return writeServiceError(c, err)
	}
	return c.File(path)
}

// Languages godoc
// @Summary List supported languages
// @Tags translate
// @Produce json
// @Success 200 {array} languageResponse
// @Router /languages [get]
func (h *TranslateHandler) Languages(c echo.Context) error {
	entries := h.service.Languages()
	response := make([]languageResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toLanguageResponse(entry))
	}
	return c.JSON(http.StatusOK, response)
}

// Status godoc
// @Summary Report which upstream services are configured
// @Description With check=1 the translation provider and the proxy are contacted.
// @Tags translate
// @Produce json
// @Param check query bool false "Contact upstream services"
// @Success 200 {object} statusResponse
// @Router /status [get]
func (h *TranslateHandler) Status(c echo.Context) error {
	check, _ := strconv.ParseBool(c.QueryParam("check"))
	status := h.service.Status(c.Request().Context(), check)
	return c.JSON(http.StatusOK, statusResponse{
		Translation:      status.Translation,
		Provider:         status.Provider,
		Speech:           status.Speech,
		Strategy:         status.Strategy,
		Proxy:            status.Proxy,
		TranslationCheck: status.TranslationCheck,
		ProxyCheck:       status.ProxyCheck,
	})
}

func writeTranslateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return writeError(c, http.StatusBadRequest, msgEmptyText)
	case errors.Is(err, service.ErrServiceUnavailable):
		return writeError(c, http.StatusInternalServerError, msgTranslationMissing)
	default:
		return writeError(c, http.StatusInternalServerError, msgTranslationFailed)
	}
}

func toLanguageResponse(entry language.Entry) languageResponse {
	return languageResponse{Code: entry.Code, Name: entry.DisplayName, Voice: entry.VoiceID}
}
