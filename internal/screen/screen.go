// Package screen holds the per-screen state machines behind each portal
// view. List screens follow loading → ready, rendering an empty collection
// plus a notification after a failed fetch. Mutating actions follow
// idle → confirming → submitting → idle, re-fetching on success and leaving
// prior data untouched on failure.
package screen

// Phase is a screen's fetch lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

// Notifier receives the user-facing toast notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer answers confirmation requests for destructive actions, replacing
// the browser's native confirm/prompt dialogs with a testable interface.
type Confirmer interface {
	// Confirm asks a yes/no question.
	Confirm(prompt string) bool
	// Prompt asks for a free-text value; ok is false when the user cancelled.
	Prompt(prompt string) (value string, ok bool)
}

const (
	// FilterAll disables a status or type filter.
	FilterAll = "all"
)
