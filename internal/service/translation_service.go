//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lingua/backend/internal/language"
	"lingua/backend/internal/metrics"
	"lingua/backend/internal/service/ai"
	"lingua/backend/internal/service/speech"
	"lingua/backend/pkg/logger"
)

// AudioErrorMessage is reported to clients when translation succeeded but speech did not.
const AudioErrorMessage = "語音合成失敗"

type TranslateInput struct {
	Text       string
	SourceLang string
	TargetLang string
	Speak      bool
}

type TranslateOutput struct {
	TranslatedText string
	AudioURL       string
	AudioError     string
}

type Status struct {
	Translation bool
	Provider    string
	Speech      bool
	Strategy    string
	Proxy       bool
	// Check outcomes, empty unless Status ran the upstream checks.
	TranslationCheck string
	ProxyCheck       string
}

// Check outcomes reported in Status.
const (
	CheckOK      = "ok"
	CheckFailed  = "failed"
	CheckSkipped = "skipped"
)

// statusCheckTimeout bounds all upstream checks of one Status call.
const statusCheckTimeout = 10 * time.Second

// Translator is the upstream translation client, satisfied by *ai.Translator.
type Translator interface {
	Available() bool
	ProviderName() string
	Translate(ctx context.Context, systemPrompt, userText string) (string, error)
	Check(ctx context.Context) error
}

// ProxyChecker reports the outbound proxy and tests it, satisfied by *network.ClientFactory.
type ProxyChecker interface {
	ProxyURL() string
	TestProxy(ctx context.Context, testURL string) error
}

type TranslationService interface {
	Translate(ctx context.Context, in TranslateInput) (TranslateOutput, error)
	Synthesize(ctx context.Context, text, lang string) (*speech.Audio, error)
	Languages() []language.Entry
	// Status reports configuration; with check it also contacts the
	// translation provider and the proxy.
	Status(ctx context.Context, check bool) Status
}

type translationService struct {
	translator    Translator
	synthesizer   speech.Synthesizer
	store         *AudioStore
	defaultTarget string
	proxy         ProxyChecker
	proxyTestURL  string
}

type TranslationOption func(*translationService)

// WithProxyCheck lets Status report the proxy and test it against testURL.
func WithProxyCheck(proxy ProxyChecker, testURL string) TranslationOption {
	return func(s *translationService) {
		s.proxy = proxy
		s.proxyTestURL = strings.TrimSpace(testURL)
	}
}

func NewTranslationService(translator Translator, synthesizer speech.Synthesizer, store *AudioStore, defaultTarget string, opts ...TranslationOption) TranslationService {
	if synthesizer == nil {
		synthesizer = speech.Disabled{}
	}
	if strings.TrimSpace(defaultTarget) == "" {
		defaultTarget = "en-US"
	}
	s := &translationService{
		translator:    translator,
		synthesizer:   synthesizer,
		store:         store,
		defaultTarget: defaultTarget,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *translationService) Translate(ctx context.Context, in TranslateInput) (TranslateOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return TranslateOutput{}, fmt.Errorf("%w: %w", ErrInvalid, ErrEmptyInput)
	}

	source := strings.TrimSpace(in.SourceLang)
	target := strings.TrimSpace(in.TargetLang)
	if target == "" || language.IsAuto(target) {
		target = s.defaultTarget
	}

	autoDetect := language.IsAuto(source)
	sourceName := ""
	if !autoDetect {
		sourceName = language.DisplayName(source)
	}
	prompt, err := ai.BuildSystemPrompt(sourceName, language.DisplayName(target), autoDetect)
	if err != nil {
		return TranslateOutput{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	translated, err := s.translate(ctx, prompt, text)
	if err != nil {
		return TranslateOutput{}, err
	}

	out := TranslateOutput{TranslatedText: translated}
	if !in.Speak || !s.synthesizer.Available() {
		return out, nil
	}

	audio, err := s.synthesize(ctx, translated, target)
	if err != nil {
		out.AudioError = AudioErrorMessage
		return out, nil
	}

	name, err := s.storeAudio(translated, audio)
	if err != nil {
		logger.Error("store audio failed", "module", "service", "action", "save", "resource", "audio", "result", "failed", "error", err)
		out.AudioError = AudioErrorMessage
		return out, nil
	}
	out.AudioURL = "/audio/" + name
	return out, nil
}

func (s *translationService) Synthesize(ctx context.Context, text, lang string) (*speech.Audio, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, ErrEmptyInput)
	}
	lang = strings.TrimSpace(lang)
	if lang == "" || language.IsAuto(lang) {
		lang = s.defaultTarget
	}
	return s.synthesize(ctx, text, lang)
}

func (s *translationService) Languages() []language.Entry {
	return language.All()
}

func (s *translationService) Status(ctx context.Context, check bool) Status {
	status := Status{
		Translation: s.translator != nil && s.translator.Available(),
		Provider:    s.providerName(),
		Speech:      s.synthesizer.Available(),
		Strategy:    s.synthesizer.Name(),
		Proxy:       s.proxy != nil && s.proxy.ProxyURL() != "",
	}
	if !check {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, statusCheckTimeout)
	defer cancel()

	status.TranslationCheck = CheckSkipped
	if status.Translation {
		status.TranslationCheck = checkOutcome("translation", s.translator.Check(ctx))
	}
	status.ProxyCheck = CheckSkipped
	if status.Proxy && s.proxyTestURL != "" {
		status.ProxyCheck = checkOutcome("proxy", s.proxy.TestProxy(ctx, s.proxyTestURL))
	}
	return status
}

func checkOutcome(resource string, err error) string {
	if err != nil {
		logger.Warn("status check failed", "module", "service", "action", "check", "resource", resource, "result", "failed", "error", err)
		return CheckFailed
	}
	return CheckOK
}

func (s *translationService) providerName() string {
	if s.translator == nil {
		return ""
	}
	return s.translator.ProviderName()
}

func (s *translationService) translate(ctx context.Context, prompt, text string) (string, error) {
	provider := s.providerName()
	if s.translator == nil || !s.translator.Available() {
		metrics.RecordTranslation("none", metrics.OutcomeUnavailable, 0)
		logger.Warn("translation unavailable", "module", "service", "action", "translate", "resource", "translation", "result", "failed")
		return "", ErrServiceUnavailable
	}

	start := time.Now()
	translated, err := s.translator.Translate(ctx, prompt, text)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, ai.ErrServiceUnavailable) {
			metrics.RecordTranslation(provider, metrics.OutcomeUnavailable, elapsed)
			return "", ErrServiceUnavailable
		}
		metrics.RecordTranslation(provider, metrics.OutcomeError, elapsed)
		logger.Error("translation failed", "module", "service", "action", "translate", "resource", "translation", "result", "failed", "provider", provider, "duration", elapsed, "error", err)
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	metrics.RecordTranslation(provider, metrics.OutcomeSuccess, elapsed)
	logger.Debug("translation done", "module", "service", "action", "translate", "resource", "translation", "result", "ok", "provider", provider, "duration", elapsed)
	return translated, nil
}

func (s *translationService) synthesize(ctx context.Context, text, lang string) (*speech.Audio, error) {
	strategy := s.synthesizer.Name()
	if !s.synthesizer.Available() {
		metrics.RecordSynthesis(strategy, metrics.OutcomeUnavailable, 0, 0)
		return nil, ErrServiceUnavailable
	}

	start := time.Now()
	audio, err := s.synthesizer.Synthesize(ctx, text, lang)
	elapsed := time.Since(start)
	if err == nil && (audio == nil || len(audio.Data) == 0) {
		err = errors.New("synthesizer returned no audio")
	}
	if err != nil {
		if errors.Is(err, speech.ErrServiceUnavailable) {
			metrics.RecordSynthesis(strategy, metrics.OutcomeUnavailable, elapsed, 0)
			logger.Warn("speech unavailable", "module", "service", "action", "synthesize", "resource", "speech", "result", "failed", "strategy", strategy, "error", err)
			return nil, ErrServiceUnavailable
		}
		metrics.RecordSynthesis(strategy, metrics.OutcomeError, elapsed, 0)
		logger.Error("speech synthesis failed", "module", "service", "action", "synthesize", "resource", "speech", "result", "failed", "strategy", strategy, "lang", lang, "duration", elapsed, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	metrics.RecordSynthesis(strategy, metrics.OutcomeSuccess, elapsed, len(audio.Data))
	return audio, nil
}

func (s *translationService) storeAudio(text string, audio *speech.Audio) (string, error) {
	if s.store == nil {
		return "", errors.New("audio store not configured")
	}
	return s.store.Save(text, audio)
}
