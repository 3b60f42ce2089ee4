package speech_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lingua/backend/internal/service/speech"

	"github.com/stretchr/testify/require"
)

type slowEcho struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *slowEcho) Name() string    { return "echo" }
func (s *slowEcho) Available() bool { return true }

func (s *slowEcho) Synthesize(ctx context.Context, text, lang string) (*speech.Audio, error) {
	s.calls.Add(1)
	<-s.release
	return &speech.Audio{Data: []byte(lang + ":" + text), ContentType: speech.ContentTypeMPEG, Extension: ".mp3"}, nil
}

func TestShared_DistinctTextsNeverCross(t *testing.T) {
	inner := &slowEcho{release: make(chan struct{})}
	s := speech.NewShared(inner)

	texts := []string{"A", "B", "C", "D"}
	results := make([]string, len(texts))
	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			audio, err := s.Synthesize(context.Background(), text, "en-US")
			require.NoError(t, err)
			results[i] = string(audio.Data)
		}(i, text)
	}
	time.Sleep(20 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	for i, text := range texts {
		require.Equal(t, "en-US:"+text, results[i])
	}
	require.Equal(t, int32(len(texts)), inner.calls.Load())
}

func TestShared_IdenticalRequestsCollapse(t *testing.T) {
	inner := &slowEcho{release: make(chan struct{})}
	s := speech.NewShared(inner)

	const n = 5
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			audio, err := s.Synthesize(context.Background(), "same", "ja-JP")
			require.NoError(t, err)
			require.Equal(t, "ja-JP:same", string(audio.Data))
		}()
	}
	require.Eventually(t, func() bool { return inner.calls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	require.LessOrEqual(t, inner.calls.Load(), int32(n))
	require.GreaterOrEqual(t, inner.calls.Load(), int32(1))
	require.Equal(t, "echo", s.Name())
	require.True(t, s.Available())
}

type ctxAwareEcho struct {
	calls   atomic.Int32
	release chan struct{}
}

func (s *ctxAwareEcho) Name() string    { return "echo" }
func (s *ctxAwareEcho) Available() bool { return true }

func (s *ctxAwareEcho) Synthesize(ctx context.Context, text, lang string) (*speech.Audio, error) {
	s.calls.Add(1)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.release:
		return &speech.Audio{Data: []byte(lang + ":" + text), ContentType: speech.ContentTypeMPEG, Extension: ".mp3"}, nil
	}
}

func TestShared_FirstCallerCancelDoesNotAbortOthers(t *testing.T) {
	inner := &ctxAwareEcho{release: make(chan struct{})}
	s := speech.NewShared(inner)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Synthesize(firstCtx, "hi", "en-US")
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return inner.calls.Load() == 1 }, time.Second, time.Millisecond)

	type result struct {
		audio *speech.Audio
		err   error
	}
	second := make(chan result, 1)
	go func() {
		audio, err := s.Synthesize(context.Background(), "hi", "en-US")
		second <- result{audio, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case err := <-firstErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(inner.release)
	select {
	case res := <-second:
		require.NoError(t, res.err)
		require.Equal(t, "en-US:hi", string(res.audio.Data))
	case <-time.After(time.Second):
		t.Fatal("second caller did not return")
	}
	require.Equal(t, int32(1), inner.calls.Load())
}

func TestShared_CallerContextAlreadyDone(t *testing.T) {
	inner := &ctxAwareEcho{release: make(chan struct{})}
	s := speech.NewShared(inner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Synthesize(ctx, "bye", "en-US")
	require.ErrorIs(t, err, context.Canceled)
	close(inner.release)
}
