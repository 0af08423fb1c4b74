package memory

import (
	"sync"

	"github.com/Aliya0322/telegram-bot/internal/domain"
)

// SessionStore is the in-memory domain.SessionStore, one session per user.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.UserID]*domain.Session
}

var _ domain.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.UserID]*domain.Session),
	}
}

// Get returns a copy of the user's session, or an Idle session with empty
// scratch when none exists. Absence does not create one.
func (s *SessionStore) Get(userID domain.UserID) domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return domain.Session{
			UserID:  userID,
			State:   domain.StateIdle,
			Scratch: map[string]string{},
		}
	}

	scratch := make(map[string]string, len(sess.Scratch))
	for k, v := range sess.Scratch {
		scratch[k] = v
	}
	return domain.Session{
		UserID:  userID,
		State:   sess.State,
		Scratch: scratch,
	}
}

func (s *SessionStore) SetState(userID domain.UserID, state domain.FlowState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(userID).State = state
}

func (s *SessionStore) SetField(userID domain.UserID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(userID).Scratch[key] = value
}

// Clear resets the session to Idle and drops all scratch fields.
func (s *SessionStore) Clear(userID domain.UserID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

func (s *SessionStore) ensure(userID domain.UserID) *domain.Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &domain.Session{
			UserID:  userID,
			State:   domain.StateIdle,
			Scratch: map[string]string{},
		}
		s.sessions[userID] = sess
	}
	return sess
}
