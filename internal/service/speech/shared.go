package speech

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

var errNoAudio = errors.New("synthesizer returned no audio")

// sharedCallTimeout bounds a collapsed call, which no longer follows any
// single caller's cancellation.
const sharedCallTimeout = 2 * time.Minute

// Shared collapses concurrent identical requests (same text and language)
// into a single call on the wrapped synthesizer. Distinct requests never share
// results. Each caller stops waiting when its own context ends; the shared
// call keeps running for the others.
type Shared struct {
	inner Synthesizer
	group singleflight.Group
}

func NewShared(inner Synthesizer) *Shared {
	return &Shared{inner: inner}
}

func (s *Shared) Name() string    { return s.inner.Name() }
func (s *Shared) Available() bool { return s.inner.Available() }

func (s *Shared) Synthesize(ctx context.Context, text, lang string) (*Audio, error) {
	key := lang + "\x00" + text
	ch := s.group.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedCallTimeout)
		defer cancel()
		return s.inner.Synthesize(callCtx, text, lang)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		shared, ok := res.Val.(*Audio)
		if !ok || shared == nil {
			return nil, &UpstreamError{Err: errNoAudio}
		}
		audio := *shared
		return &audio, nil
	}
}
