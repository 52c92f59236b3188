package tui

import (
	"github.com/finsight-cli/finsight/internal/dashboard"
)

// Data loading messages.
type snapshotMsg struct {
	snapshot   *dashboard.Snapshot
	generation int
}

// Voice flow messages.
type transcriptMsg struct {
	err        error
	transcript string
}

type draftReadyMsg struct {
	err error
}

type draftSavedMsg struct {
	err error
}

// Status line messages.
type statusMsg struct {
	text  string
	level statusLevel
}

type clearStatusMsg struct{}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusError
)
