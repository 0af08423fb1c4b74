package memory

import (
	"sync"
	"time"

	"github.com/Aliya0322/telegram-bot/internal/domain"
)

// QuotaLedger is the in-memory domain.QuotaLedger with per-user daily
// counters. The only reset is the implicit one on date rollover; nothing
// survives a process restart.
type QuotaLedger struct {
	mu      sync.Mutex
	max     int
	records map[domain.UserID]*domain.QuotaRecord
}

var _ domain.QuotaLedger = (*QuotaLedger)(nil)

// NewQuotaLedger creates a ledger allowing max requests per user per day.
func NewQuotaLedger(max int) *QuotaLedger {
	return &QuotaLedger{
		max:     max,
		records: make(map[domain.UserID]*domain.QuotaRecord),
	}
}

// Check reports the remaining requests for today. A missing record, or one
// stamped with an earlier date, is reset to zero for today first.
func (l *QuotaLedger) Check(userID domain.UserID, today time.Time) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := today.Format(time.DateOnly)

	rec, ok := l.records[userID]
	if !ok || rec.Date != day {
		rec = &domain.QuotaRecord{Date: day}
		l.records[userID] = rec
	}

	remaining := l.max - rec.Count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, remaining > 0
}

// Increment adds one request to the user's current-day record. A user with
// no record is ignored; Check always runs first and creates it.
func (l *QuotaLedger) Increment(userID domain.UserID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec, ok := l.records[userID]; ok {
		rec.Count++
	}
}
