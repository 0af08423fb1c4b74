package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	memstore "github.com/Aliya0322/telegram-bot/internal/adapters/storage/memory"
	"github.com/Aliya0322/telegram-bot/internal/domain"
)

func TestSessionStore_GetAbsentReturnsIdle(t *testing.T) {
	store := memstore.NewSessionStore()

	sess := store.Get(domain.UserID(1))
	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Empty(t, sess.Scratch)
}

func TestSessionStore_SetStateAndFields(t *testing.T) {
	store := memstore.NewSessionStore()
	uid := domain.UserID(1)

	store.SetState(uid, domain.StateAwaitingEmailTone)
	store.SetField(uid, "email_topic", "vacation request")

	sess := store.Get(uid)
	assert.Equal(t, domain.StateAwaitingEmailTone, sess.State)
	assert.Equal(t, "vacation request", sess.Scratch["email_topic"])
}

func TestSessionStore_ClearResetsToIdleAndDropsScratch(t *testing.T) {
	store := memstore.NewSessionStore()
	uid := domain.UserID(1)

	store.SetState(uid, domain.StateAwaitingEmailDetails)
	store.SetField(uid, "email_topic", "complaint")
	store.SetField(uid, "email_tone", "Official")

	store.Clear(uid)

	sess := store.Get(uid)
	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Empty(t, sess.Scratch)
}

func TestSessionStore_GetReturnsCopy(t *testing.T) {
	store := memstore.NewSessionStore()
	uid := domain.UserID(1)

	store.SetField(uid, "email_topic", "original")

	sess := store.Get(uid)
	sess.Scratch["email_topic"] = "mutated"

	assert.Equal(t, "original", store.Get(uid).Scratch["email_topic"])
}

func TestSessionStore_UsersAreIsolated(t *testing.T) {
	store := memstore.NewSessionStore()

	store.SetState(domain.UserID(1), domain.StateAwaitingEssayTopic)

	assert.Equal(t, domain.StateIdle, store.Get(domain.UserID(2)).State)
}
