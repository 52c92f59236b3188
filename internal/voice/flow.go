// Package voice implements the voice transaction capture flow: one
// utterance is transcribed, interpreted into a draft transaction by
// the backend, reviewed and optionally edited by the user, then
// confirmed or discarded. The flow is an explicit state machine with
// guarded transitions; events arriving in the wrong state are
// rejected rather than silently reordered.
package voice

import (
	"context"
	"errors"
	"fmt"

	"github.com/finsight-cli/finsight/internal/model"
)

// State is the flow's current position.
type State int

const (
	StateIdle State = iota
	StateListening
	StateTranscribing
	StateAwaitingConfirmation
	StateSubmitting
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateTranscribing:
		return "transcribing"
	case StateAwaitingConfirmation:
		return "awaiting-confirmation"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when an event arrives in a state
// that does not accept it, including a second Start while a capture
// is already running.
var ErrInvalidTransition = errors.New("invalid voice flow transition")

// ErrUnavailable is returned by Start when no recognizer is usable in
// this environment. Callers should hide or disable the feature, not
// treat this as a runtime failure.
var ErrUnavailable = errors.New("voice capture is not available")

// Interpreter turns a raw transcript into a structured draft.
type Interpreter interface {
	ProcessVoiceEntry(ctx context.Context, voiceText string) (model.VoiceDraft, error)
}

// Confirmer persists a confirmed draft.
type Confirmer interface {
	ConfirmVoiceTransaction(ctx context.Context, draft model.VoiceDraft) error
}

// Flow drives a single voice capture from activation to confirm or
// cancel. It is not safe for concurrent use; it is driven from one
// event loop, matching the single-threaded flow it models.
type Flow struct {
	interpreter Interpreter
	confirmer   Confirmer
	rec         Recognizer
	draft       model.VoiceDraft
	transcript  string
	state       State
}

// NewFlow builds an idle flow.
func NewFlow(rec Recognizer, interpreter Interpreter, confirmer Confirmer) *Flow {
	return &Flow{
		rec:         rec,
		interpreter: interpreter,
		confirmer:   confirmer,
		state:       StateIdle,
	}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Draft returns the current editable draft. Only meaningful in
// AwaitingConfirmation and later.
func (f *Flow) Draft() model.VoiceDraft {
	return f.draft
}

// Transcript returns the captured utterance, empty before transcription.
func (f *Flow) Transcript() string {
	return f.transcript
}

// Start moves Idle → Listening. It fails with ErrUnavailable when the
// environment has no recognizer, and rejects re-entry from any other
// state: no concurrent recognition sessions.
func (f *Flow) Start() error {
	if f.state != StateIdle {
		return fmt.Errorf("%w: cannot start listening while %s", ErrInvalidTransition, f.state)
	}
	if f.rec == nil || !f.rec.Available() {
		return ErrUnavailable
	}
	f.state = StateListening
	return nil
}

// Transcript received: Listening → Transcribing.
func (f *Flow) SetTranscript(text string) error {
	if f.state != StateListening {
		return fmt.Errorf("%w: transcript while %s", ErrInvalidTransition, f.state)
	}
	f.transcript = text
	f.state = StateTranscribing
	return nil
}

// RecognitionFailed handles a recognition error (no speech, denied
// permission, engine failure): Listening → Idle. The reason is
// surfaced to the caller for display.
func (f *Flow) RecognitionFailed(cause error) error {
	if f.state != StateListening {
		return fmt.Errorf("%w: recognition error while %s", ErrInvalidTransition, f.state)
	}
	f.state = StateIdle
	return fmt.Errorf("voice recognition failed: %w", cause)
}

// Interpret sends the transcript to the backend: Transcribing →
// AwaitingConfirmation on success, back to Idle on failure.
func (f *Flow) Interpret(ctx context.Context) error {
	if f.state != StateTranscribing {
		return fmt.Errorf("%w: interpret while %s", ErrInvalidTransition, f.state)
	}

	draft, err := f.interpreter.ProcessVoiceEntry(ctx, f.transcript)
	if err != nil {
		f.state = StateIdle
		return fmt.Errorf("failed to interpret voice entry: %w", err)
	}

	f.draft = draft
	f.state = StateAwaitingConfirmation
	return nil
}

// UpdateDraft applies a user edit to the draft before confirmation.
func (f *Flow) UpdateDraft(draft model.VoiceDraft) error {
	if f.state != StateAwaitingConfirmation {
		return fmt.Errorf("%w: edit while %s", ErrInvalidTransition, f.state)
	}
	f.draft = draft
	return nil
}

// Confirm submits the draft: AwaitingConfirmation → Submitting →
// Done. On failure the flow returns to AwaitingConfirmation with the
// user's edits intact so they can retry.
func (f *Flow) Confirm(ctx context.Context) error {
	if f.state != StateAwaitingConfirmation {
		return fmt.Errorf("%w: confirm while %s", ErrInvalidTransition, f.state)
	}

	f.state = StateSubmitting
	if err := f.confirmer.ConfirmVoiceTransaction(ctx, f.draft); err != nil {
		f.state = StateAwaitingConfirmation
		return fmt.Errorf("failed to save voice transaction: %w", err)
	}

	f.state = StateDone
	return nil
}

// Cancel discards the draft unconditionally, with no network call.
func (f *Flow) Cancel() error {
	if f.state != StateAwaitingConfirmation {
		return fmt.Errorf("%w: cancel while %s", ErrInvalidTransition, f.state)
	}
	f.draft = model.VoiceDraft{}
	f.state = StateCancelled
	return nil
}
