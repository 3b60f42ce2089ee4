package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"lingua/backend/internal/language"
)

// CommandSynthesizer renders speech with a local espeak-compatible engine:
// "<command> -v <voice> -w <out.wav> --stdin", text on stdin.
type CommandSynthesizer struct {
	command string
}

func NewCommandSynthesizer(command string) *CommandSynthesizer {
	command = strings.TrimSpace(command)
	if command == "" {
		command = "espeak-ng"
	}
	return &CommandSynthesizer{command: command}
}

func (s *CommandSynthesizer) Name() string { return StrategyLocal }

func (s *CommandSynthesizer) Available() bool {
	_, err := exec.LookPath(s.command)
	return err == nil
}

func (s *CommandSynthesizer) Synthesize(ctx context.Context, text, lang string) (*Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	bin, err := exec.LookPath(s.command)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	tmp, err := os.CreateTemp("", "lingua-tts-*.wav")
	if err != nil {
		return nil, fmt.Errorf("create temp file for speech output: %w", err)
	}
	outPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(outPath)

	voice := language.PrimarySubtag(lang)
	if voice == "" || voice == language.Auto {
		voice = "en"
	}

	// #nosec G204 -- the binary comes from configuration, text goes through stdin
	cmd := exec.CommandContext(ctx, bin, "-v", voice, "-w", outPath, "--stdin")
	cmd.Stdin = strings.NewReader(text)
	output, err := cmd.CombinedOutput()
	if err != nil {
		status := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		}
		return nil, &UpstreamError{Status: status, Body: strings.TrimSpace(string(output)), Err: err}
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read speech output: %w", err)
	}
	if len(data) == 0 {
		return nil, &UpstreamError{Err: fmt.Errorf("%s produced no audio", s.command)}
	}

	return &Audio{Data: data, ContentType: ContentTypeWAV, Extension: ".wav"}, nil
}
