package domain

import (
	"context"
	"time"
)

// ModelGateway defines how the core application invokes the LLM backend.
// One call is one full turn: implementations that stream internally must
// drain and concatenate every chunk before returning, so callers never
// observe partial output.
type ModelGateway interface {
	Complete(ctx context.Context, prompt PromptSpec) (string, error)
}

// SessionStore owns the per-user conversation sessions. The dialog service
// is the sole mutator.
type SessionStore interface {
	// Get returns the user's session, or an Idle session with empty scratch
	// when none exists. Absence does not create one.
	Get(userID UserID) Session
	SetState(userID UserID, state FlowState)
	SetField(userID UserID, key, value string)
	// Clear resets the session to Idle and drops all scratch fields.
	Clear(userID UserID)
}

// QuotaLedger tracks per-user daily request counts.
type QuotaLedger interface {
	// Check reports the remaining requests for today and whether another
	// one is allowed. A missing or stale-dated record is reset to zero for
	// today first; beyond that lazy reset the call has no side effect.
	Check(userID UserID, today time.Time) (remaining int, allowed bool)

	// Increment adds one to the user's current-day count. It is called at
	// most once per accepted model turn, after the gate check and before
	// the model call; a failed model call still consumes the slot.
	Increment(userID UserID)
}
