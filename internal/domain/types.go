package domain

// UserID identifies a single end user. It is the Telegram chat id, but the
// core treats it as opaque.
type UserID int64

// FlowState is the position of a user's session inside a guided dialog.
type FlowState string

const (
	StateIdle                 FlowState = "idle"
	StateAwaitingSpellText    FlowState = "awaiting_spell_text"
	StateAwaitingEmailTopic   FlowState = "awaiting_email_topic"
	StateAwaitingEmailTone    FlowState = "awaiting_email_tone"
	StateAwaitingEmailDetails FlowState = "awaiting_email_details"
	StateAwaitingEssayTopic   FlowState = "awaiting_essay_topic"
)

// PromptSpec is the system/user prompt pair sent to the model for one turn.
// It is built fresh per invocation and never cached.
type PromptSpec struct {
	System string
	User   string
}
