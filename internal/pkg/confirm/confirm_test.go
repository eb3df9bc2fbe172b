package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmit_ExactPhraseConfirms(t *testing.T) {
	c := New("user_delete", "u42").Begin()

	got := c.Submit("DELETE")

	assert.Equal(t, StateConfirmed, got)
	assert.True(t, c.Confirmed())
	assert.NotNil(t, c.ResolvedAt)
}

func TestSubmit_RejectsEverythingElse(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lowercase must not arm the action", "delete"},
		{"mixed case", "Delete"},
		{"trailing space", "DELETE "},
		{"leading space", " DELETE"},
		{"empty input", ""},
		{"unrelated word", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("report_delete", "r1").Begin()

			got := c.Submit(tt.input)

			assert.Equal(t, StateCancelled, got)
			assert.False(t, c.Confirmed())
		})
	}
}

func TestSubmit_OnlyFromConfirming(t *testing.T) {
	idle := New("user_delete", "u1")
	assert.Equal(t, StateIdle, idle.Submit("DELETE"), "idle confirmations ignore input")

	resolved := New("user_delete", "u1").Begin()
	resolved.Submit("DELETE")
	assert.Equal(t, StateConfirmed, resolved.Submit("nope"), "resolved confirmations stay resolved")
}

func TestSubmitReason(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   State
	}{
		{"non-empty reason confirms", "spamming fake accidents", StateConfirmed},
		{"empty reason cancels", "", StateCancelled},
		{"whitespace-only reason cancels", "   ", StateCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("user_suspend", "u7").Begin()

			got := c.SubmitReason(tt.reason)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitReason_OnlyFromConfirming(t *testing.T) {
	idle := New("user_suspend", "u1")
	assert.Equal(t, StateIdle, idle.SubmitReason("valid reason"))
}

func TestCancel(t *testing.T) {
	c := New("comment_delete", "c9").Begin()

	got := c.Cancel()

	assert.Equal(t, StateCancelled, got)
	assert.False(t, c.Confirmed())
	assert.NotNil(t, c.ResolvedAt)
}

func TestBegin_FromIdleOnly(t *testing.T) {
	c := New("user_delete", "u1").Begin()
	c.Submit("DELETE")
	before := c.State

	c.Begin()

	assert.Equal(t, before, c.State, "a resolved confirmation cannot be rearmed")
}
