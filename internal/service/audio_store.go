package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"lingua/backend/internal/hashutil"
	"lingua/backend/internal/service/speech"
)

// AudioStore keeps synthesized clips on disk. Every Save creates a new file,
// so concurrent requests never overwrite each other's audio.
type AudioStore struct {
	dir string
}

func NewAudioStore(dir string) (*AudioStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &AudioStore{dir: dir}, nil
}

func (s *AudioStore) Dir() string {
	return s.dir
}

// Save writes audio under a fresh name derived from text and returns the file name.
func (s *AudioStore) Save(text string, audio *speech.Audio) (string, error) {
	if audio == nil || len(audio.Data) == 0 {
		return "", fmt.Errorf("save audio: %w", ErrEmptyInput)
	}

	ext := audio.Extension
	if ext == "" {
		ext = ".bin"
	}
	name := fmt.Sprintf("%s-%s-%s%s",
		hashutil.ShortHex(text, 16),
		strconv.FormatInt(time.Now().UnixNano(), 10),
		strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		ext,
	)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	if _, err := f.Write(audio.Data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close audio file: %w", err)
	}
	return name, nil
}

// Path resolves a stored file name. Names with directory parts are rejected.
func (s *AudioStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

// Prune removes files last modified more than maxAge ago and returns how many were removed.
func (s *AudioStore) Prune(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read audio dir: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
