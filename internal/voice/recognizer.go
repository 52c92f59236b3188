package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Recognizer captures exactly one final utterance. There are no
// interim results and no alternatives, mirroring a one-shot
// recognition session.
type Recognizer interface {
	// Available reports whether recognition can run in this
	// environment. When false the voice feature is hidden, not
	// errored.
	Available() bool
	// Listen blocks until one utterance is transcribed or the
	// context ends.
	Listen(ctx context.Context) (string, error)
}

// ExecRecognizer shells out to a user-configured transcriber command
// (for example a whisper wrapper) and reads the transcript from its
// stdout. The command is expected to record from the default
// microphone, transcribe one utterance, print it, and exit.
type ExecRecognizer struct {
	Command  string
	Language string
}

// Available reports whether a command is configured and resolvable.
func (r *ExecRecognizer) Available() bool {
	if strings.TrimSpace(r.Command) == "" {
		return false
	}
	name := strings.Fields(r.Command)[0]
	if _, err := exec.LookPath(name); err != nil {
		slog.Debug("voice transcriber not found in PATH", "command", name)
		return false
	}
	return true
}

// Listen runs the transcriber and returns its trimmed stdout.
func (r *ExecRecognizer) Listen(ctx context.Context) (string, error) {
	if !r.Available() {
		return "", ErrUnavailable
	}

	parts := strings.Fields(r.Command)
	args := parts[1:]
	if r.Language != "" {
		args = append(args, "--language", r.Language)
	}

	out, err := exec.CommandContext(ctx, parts[0], args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("transcriber failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("transcriber failed: %w", err)
	}

	transcript := strings.TrimSpace(string(out))
	if transcript == "" {
		return "", errors.New("no speech detected")
	}
	return transcript, nil
}
