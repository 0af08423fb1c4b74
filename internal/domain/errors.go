package domain

import "errors"

// Sentinel errors. Every failure in the core resolves to a session-local
// textual reply; nothing here may terminate the process or reach the user
// as a raw error.
var (
	ErrQuotaExceeded       = errors.New("daily request quota exceeded")
	ErrMessageTooLong      = errors.New("message exceeds the character limit")
	ErrEmptyReply          = errors.New("model returned an empty reply")
	ErrRateLimited         = errors.New("rate limited by model provider")
	ErrAuthFailed          = errors.New("model provider authentication failed")
	ErrInvalidRequest      = errors.New("model provider rejected the request")
	ErrProviderUnavailable = errors.New("model provider unavailable")
)
