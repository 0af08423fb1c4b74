// Package dialog implements the conversation state machine: it maps each
// inbound message or menu selection to a state transition, collects scratch
// data across turns, and gates every model-invoking turn through the quota
// ledger.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Aliya0322/telegram-bot/internal/domain"
	"github.com/Aliya0322/telegram-bot/internal/observability"
)

// Scratch field names used by the email flow.
const (
	fieldEmailTopic = "email_topic"
	fieldEmailTone  = "email_tone"
)

// Keyboard tells the transport which keyboard to attach to a reply.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMenu
	KeyboardTone
)

// Input is one inbound event. Select carries the callback token of an
// inline-keyboard tap; it is empty for plain messages.
type Input struct {
	UserID domain.UserID
	Text   string
	Select string
}

// Reply is one outbound message.
type Reply struct {
	Text     string
	Keyboard Keyboard
}

// Service is the dialog controller. It is the sole mutator of the session
// store and serializes all handling per user, so two messages from the same
// user can never race the quota check or a state read-modify-write.
type Service struct {
	gateway   domain.ModelGateway
	sessions  domain.SessionStore
	quota     domain.QuotaLedger
	charLimit int
	now       func() time.Time

	mu        sync.Mutex
	userLocks map[domain.UserID]*sync.Mutex
}

// Option configures the service.
type Option func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(
	gateway domain.ModelGateway,
	sessions domain.SessionStore,
	quota domain.QuotaLedger,
	charLimit int,
	opts ...Option,
) *Service {
	s := &Service{
		gateway:   gateway,
		sessions:  sessions,
		quota:     quota,
		charLimit: charLimit,
		now:       time.Now,
		userLocks: make(map[domain.UserID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle processes one inbound event and returns the replies to deliver.
// The user's lock is held for the whole turn, including the model round
// trip; handling stays concurrent across different users.
func (s *Service) Handle(ctx context.Context, in Input) []Reply {
	lock := s.userLock(in.UserID)
	lock.Lock()
	defer lock.Unlock()

	if in.Select != "" {
		return s.handleSelect(ctx, in)
	}
	return s.handleText(ctx, in)
}

func (s *Service) handleText(ctx context.Context, in Input) []Reply {
	text := strings.TrimSpace(in.Text)

	switch text {
	case "/start":
		s.sessions.Clear(in.UserID)
		return []Reply{{Text: welcomeText, Keyboard: KeyboardMenu}}
	case "/cancel":
		s.sessions.Clear(in.UserID)
		return []Reply{{Text: cancelText, Keyboard: KeyboardMenu}}
	case MenuInviteFriend:
		// No model call, no quota effect, session untouched.
		return []Reply{{Text: inviteText, Keyboard: KeyboardMenu}}
	}

	sess := s.sessions.Get(in.UserID)

	switch sess.State {
	case domain.StateAwaitingSpellText:
		return s.modelTurn(ctx, in.UserID, text, func() domain.PromptSpec {
			return SpellCheckPrompt(text)
		})

	case domain.StateAwaitingEmailTopic:
		s.sessions.SetField(in.UserID, fieldEmailTopic, text)
		s.sessions.SetState(in.UserID, domain.StateAwaitingEmailTone)
		return []Reply{{Text: toneQuestionText, Keyboard: KeyboardTone}}

	case domain.StateAwaitingEmailTone:
		// Free-text escape from the fixed tone choices.
		return s.advanceTone(in.UserID, text)

	case domain.StateAwaitingEmailDetails:
		topic := sess.Scratch[fieldEmailTopic]
		tone := sess.Scratch[fieldEmailTone]
		details := text
		if strings.EqualFold(text, detailsNone) {
			details = ""
		}
		return s.modelTurn(ctx, in.UserID, text, func() domain.PromptSpec {
			return EmailPrompt(topic, tone, details, text)
		})

	case domain.StateAwaitingEssayTopic:
		return s.modelTurn(ctx, in.UserID, text, func() domain.PromptSpec {
			return EssayPrompt(text)
		})
	}

	// Idle: menu selections start flows, anything else is unrecognized.
	switch text {
	case MenuSpellCheck:
		s.sessions.SetState(in.UserID, domain.StateAwaitingSpellText)
		return []Reply{{Text: spellIntroText, Keyboard: KeyboardMenu}}
	case MenuWriteEmail:
		s.sessions.SetState(in.UserID, domain.StateAwaitingEmailTopic)
		return []Reply{{Text: emailIntroText, Keyboard: KeyboardMenu}}
	case MenuEssayPlan:
		s.sessions.SetState(in.UserID, domain.StateAwaitingEssayTopic)
		return []Reply{{Text: essayIntroText, Keyboard: KeyboardMenu}}
	}

	return []Reply{{Text: fallbackText, Keyboard: KeyboardMenu}}
}

// handleSelect processes an inline-keyboard callback. Only the tone step
// has one; a stale or unknown callback outside it is unrecognized input.
func (s *Service) handleSelect(_ context.Context, in Input) []Reply {
	sess := s.sessions.Get(in.UserID)
	if sess.State != domain.StateAwaitingEmailTone {
		return []Reply{{Text: fallbackText, Keyboard: KeyboardMenu}}
	}

	var tone string
	switch in.Select {
	case ToneOfficialToken:
		tone = ToneOfficial
	case ToneFriendlyToken:
		tone = ToneFriendly
	default:
		// The user already committed to the tone step; an unknown token
		// still advances with an explicit label instead of getting stuck.
		tone = ToneUnknown
	}

	return s.advanceTone(in.UserID, tone)
}

func (s *Service) advanceTone(userID domain.UserID, tone string) []Reply {
	s.sessions.SetField(userID, fieldEmailTone, tone)
	s.sessions.SetState(userID, domain.StateAwaitingEmailDetails)
	return []Reply{{Text: fmt.Sprintf(toneChosenText, tone)}}
}

// modelTurn runs the quota-gated completion for a terminal flow step. Order
// matters: the length check consumes no quota and keeps the state so the
// user can resend; a failed gate resets the session; once the ledger is
// incremented the slot is spent even if the provider call fails.
func (s *Service) modelTurn(ctx context.Context, userID domain.UserID, text string, build func() domain.PromptSpec) []Reply {
	log := observability.LoggerFromContext(ctx).With("user_id", userID)

	if utf8.RuneCountInString(text) > s.charLimit {
		return []Reply{{Text: fmt.Sprintf(tooLongText, s.charLimit), Keyboard: KeyboardMenu}}
	}

	if _, allowed := s.quota.Check(userID, s.now()); !allowed {
		s.sessions.Clear(userID)
		return []Reply{{Text: quotaExhaustedText, Keyboard: KeyboardMenu}}
	}

	s.quota.Increment(userID)

	reply, err := s.gateway.Complete(ctx, build())
	if err != nil {
		log.Error("model call failed", "error", err)
		reply = errorReplyText(err)
	}

	s.sessions.Clear(userID)

	remaining, _ := s.quota.Check(userID, s.now())
	return []Reply{
		{Text: reply, Keyboard: KeyboardMenu},
		{Text: remainingText(remaining), Keyboard: KeyboardMenu},
	}
}

func remainingText(remaining int) string {
	if remaining <= 0 {
		return quotaExhaustedText
	}
	return fmt.Sprintf(remainingQuotaText, remaining)
}

func errorReplyText(err error) string {
	if errors.Is(err, domain.ErrEmptyReply) {
		return emptyReplyText
	}
	return providerErrorText
}

func (s *Service) userLock(userID domain.UserID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}
