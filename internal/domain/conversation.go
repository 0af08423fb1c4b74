package domain

// Session is the current dialog position of one user plus the scratch data
// collected so far within the active flow. At most one session exists per
// user; scratch fields are only meaningful inside the flow that wrote them
// and are dropped when the flow completes or is abandoned.
type Session struct {
	UserID  UserID
	State   FlowState
	Scratch map[string]string
}

// QuotaRecord is one user's request counter for a single calendar date.
// It is created lazily on first access and implicitly reset the first time
// it is read on a new date.
type QuotaRecord struct {
	Count int
	Date  string // calendar date in time.DateOnly layout
}
