package speech

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	textlang "golang.org/x/text/language"

	"lingua/backend/internal/language"
)

const (
	azureOutputFormat = "audio-16khz-128kbitrate-mono-mp3"
	azureUserAgent    = "lingua-backend"
	maxErrorBody      = 4 << 10
	defaultTimeout    = 30 * time.Second
)

// AzureSynthesizer posts SSML to the Azure Cognitive Services speech endpoint.
type AzureSynthesizer struct {
	key      string
	region   string
	endpoint string
	client   *http.Client
}

func NewAzureSynthesizer(key, region string, client *http.Client) *AzureSynthesizer {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	s := &AzureSynthesizer{
		key:    strings.TrimSpace(key),
		region: strings.TrimSpace(region),
		client: client,
	}
	if s.region != "" {
		s.endpoint = fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", s.region)
	}
	return s
}

func (s *AzureSynthesizer) Name() string { return StrategyAzure }

func (s *AzureSynthesizer) Available() bool {
	return s.key != "" && s.endpoint != ""
}

func (s *AzureSynthesizer) Synthesize(ctx context.Context, text, lang string) (*Audio, error) {
	if !s.Available() {
		return nil, ErrServiceUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	voice, locale := ResolveVoice(lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(BuildSSML(text, locale, voice)))
	if err != nil {
		return nil, fmt.Errorf("build speech request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", s.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", azureOutputFormat)
	req.Header.Set("User-Agent", azureUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("read audio: %w", err)}
	}
	if len(data) == 0 {
		return nil, &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("empty audio body")}
	}

	return &Audio{Data: data, ContentType: ContentTypeMPEG, Extension: ".mp3"}, nil
}

// ResolveVoice maps a language code or a full voice name ("ja-JP-NanamiNeural")
// to a voice name and its locale.
func ResolveVoice(code string) (voice, locale string) {
	code = strings.TrimSpace(code)
	if isVoiceName(code) {
		voice = code
	} else {
		voice = language.VoiceFor(code)
	}
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) < 2 {
		return voice, code
	}
	return voice, parts[0] + "-" + parts[1]
}

// isVoiceName reports whether code names a voice rather than a language. Tags
// such as "zh-Hant-TW" have as many subtags as a voice name but parse as BCP 47.
func isVoiceName(code string) bool {
	if strings.Count(code, "-") < 2 {
		return false
	}
	if strings.HasSuffix(strings.ToLower(code), "neural") {
		return true
	}
	_, err := textlang.Parse(code)
	return err != nil
}

// BuildSSML renders the speech markup document with every value XML-escaped.
func BuildSSML(text, locale, voice string) string {
	var b bytes.Buffer
	b.WriteString("<speak version='1.0' xml:lang='")
	escape(&b, locale)
	b.WriteString("'><voice xml:lang='")
	escape(&b, locale)
	b.WriteString("' name='")
	escape(&b, voice)
	b.WriteString("'>")
	escape(&b, text)
	b.WriteString("</voice></speak>")
	return b.String()
}

func escape(b *bytes.Buffer, s string) {
	_ = xml.EscapeText(b, []byte(s))
}
