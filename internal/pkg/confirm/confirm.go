// Package confirm models the typed-phrase safety check in front of
// destructive actions as an explicit state machine, so handlers and tests can
// drive it without any real dialog.
package confirm

import (
	"strings"
	"time"
)

// Phrase is the exact word an operator must type to arm a destructive
// action. Matching is case-sensitive: "delete" does not arm anything.
const Phrase = "DELETE"

// State defines where a confirmation stands.
type State string

const (
	StateIdle       State = "idle"
	StateConfirming State = "confirming"
	StateConfirmed  State = "confirmed"
	StateCancelled  State = "cancelled"
)

// Confirmation tracks one destructive action from request to resolution.
type Confirmation struct {
	Action      string
	TargetID    string
	State       State
	RequestedAt time.Time
	ResolvedAt  *time.Time
}

// New returns an idle confirmation for an action on a target.
func New(action, targetID string) *Confirmation {
	return &Confirmation{
		Action:   action,
		TargetID: targetID,
		State:    StateIdle,
	}
}

// Begin moves idle -> confirming (the dialog is on screen).
func (c *Confirmation) Begin() *Confirmation {
	if c.State == StateIdle {
		c.State = StateConfirming
		c.RequestedAt = time.Now()
	}
	return c
}

// Submit resolves a confirming dialog with the operator's typed input. Only
// the exact Phrase confirms; anything else cancels silently. Submitting a
// resolved or idle confirmation changes nothing.
func (c *Confirmation) Submit(input string) State {
	if c.State != StateConfirming {
		return c.State
	}
	now := time.Now()
	c.ResolvedAt = &now
	if input == Phrase {
		c.State = StateConfirmed
	} else {
		c.State = StateCancelled
	}
	return c.State
}

// SubmitReason resolves a confirming dialog whose safeguard is a mandatory
// free-text reason instead of the typed phrase (suspensions). Any non-blank
// reason confirms; a blank one cancels silently.
func (c *Confirmation) SubmitReason(reason string) State {
	if c.State != StateConfirming {
		return c.State
	}
	now := time.Now()
	c.ResolvedAt = &now
	if strings.TrimSpace(reason) != "" {
		c.State = StateConfirmed
	} else {
		c.State = StateCancelled
	}
	return c.State
}

// Cancel resolves a confirming dialog without input (dialog dismissed).
func (c *Confirmation) Cancel() State {
	if c.State == StateConfirming {
		now := time.Now()
		c.ResolvedAt = &now
		c.State = StateCancelled
	}
	return c.State
}

// Confirmed reports whether the action may be issued.
func (c *Confirmation) Confirmed() bool {
	return c.State == StateConfirmed
}
