package speech_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingua/backend/internal/language"
	"lingua/backend/internal/service/speech"

	"github.com/stretchr/testify/require"
)

func newAzure(t *testing.T, handler http.HandlerFunc) speech.Synthesizer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := speech.New(speech.Config{
		Strategy: speech.StrategyAzure,
		Key:      "sub-key",
		Region:   "eastasia",
		Endpoint: server.URL + "/cognitiveservices/v1",
	})
	require.NoError(t, err)
	return s
}

func TestAzureSynthesizer_Success(t *testing.T) {
	s := newAzure(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		require.Equal(t, "application/ssml+xml", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Microsoft-OutputFormat"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "name='zh-TW-HsiaoChenNeural'")
		require.Contains(t, string(body), "xml:lang='zh-TW'")
		require.Contains(t, string(body), "哈囉 &lt;3")

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	})

	require.True(t, s.Available())
	audio, err := s.Synthesize(context.Background(), "哈囉 <3", "zh-TW")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3-bytes"), audio.Data)
	require.Equal(t, speech.ContentTypeMPEG, audio.ContentType)
	require.Equal(t, ".mp3", audio.Extension)
}

func TestAzureSynthesizer_NonOK(t *testing.T) {
	s := newAzure(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, "invalid subscription key")
	})

	_, err := s.Synthesize(context.Background(), "hello", "en-US")
	require.ErrorIs(t, err, speech.ErrUpstream)

	var upstream *speech.UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, http.StatusUnauthorized, upstream.Status)
	require.Equal(t, "invalid subscription key", upstream.Body)
}

func TestAzureSynthesizer_EmptyBody(t *testing.T) {
	s := newAzure(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := s.Synthesize(context.Background(), "hello", "en-US")
	require.ErrorIs(t, err, speech.ErrUpstream)
}

func TestAzureSynthesizer_MissingConfig(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	for _, cfg := range []struct{ key, region string }{{"", "eastasia"}, {"key", ""}} {
		s := speech.NewAzureSynthesizer(cfg.key, cfg.region, server.Client())
		require.False(t, s.Available())
		_, err := s.Synthesize(context.Background(), "hello", "en-US")
		require.ErrorIs(t, err, speech.ErrServiceUnavailable)
	}
	require.False(t, called)
}

func TestAzureSynthesizer_EmptyText(t *testing.T) {
	s := newAzure(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for empty text")
	})

	_, err := s.Synthesize(context.Background(), "  ", "en-US")
	require.ErrorIs(t, err, speech.ErrEmptyInput)
}

func TestResolveVoice(t *testing.T) {
	voice, locale := speech.ResolveVoice("en-GB")
	require.Equal(t, "en-US-JennyNeural", voice)
	require.Equal(t, "en-US", locale)

	voice, locale = speech.ResolveVoice("ja-JP-KeitaNeural")
	require.Equal(t, "ja-JP-KeitaNeural", voice)
	require.Equal(t, "ja-JP", locale)

	voice, locale = speech.ResolveVoice("zh-Hant-TW")
	require.Equal(t, "zh-TW-HsiaoChenNeural", voice)
	require.Equal(t, "zh-TW", locale)

	voice, locale = speech.ResolveVoice("sr-Latn-RS")
	require.Equal(t, language.DefaultVoice, voice)
	require.Equal(t, "en-US", locale)
}

func TestBuildSSML_Escapes(t *testing.T) {
	ssml := speech.BuildSSML(`Tom & "Jerry" 'x'`, "en-US", "en-US-JennyNeural")
	require.Equal(t,
		"<speak version='1.0' xml:lang='en-US'><voice xml:lang='en-US' name='en-US-JennyNeural'>Tom &amp; &#34;Jerry&#34; &#39;x&#39;</voice></speak>",
		ssml)
}

func TestNew_Strategies(t *testing.T) {
	s, err := speech.New(speech.Config{})
	require.NoError(t, err)
	require.Equal(t, speech.StrategyNone, s.Name())
	require.False(t, s.Available())
	_, err = s.Synthesize(context.Background(), "hi", "en")
	require.ErrorIs(t, err, speech.ErrServiceUnavailable)

	s, err = speech.New(speech.Config{Strategy: "LOCAL", Command: "definitely-not-a-tts-binary"})
	require.NoError(t, err)
	require.Equal(t, speech.StrategyLocal, s.Name())
	require.False(t, s.Available())

	_, err = speech.New(speech.Config{Strategy: "polly"})
	require.ErrorIs(t, err, speech.ErrUnknownStrategy)
}
