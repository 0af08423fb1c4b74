package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliya0322/telegram-bot/internal/app/dialog"
	"github.com/Aliya0322/telegram-bot/internal/domain"
)

func TestInputFor_MessageAndCallbackShareSessionKey(t *testing.T) {
	// Group chat: the chat id differs from the sender's user id. The topic
	// message and the tone callback must land in the same session.
	msg := tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: 7},
		Chat: &tgbotapi.Chat{ID: -99},
		Text: "vacation request",
	}}
	cb := tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: 7},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: -99}},
		Data:    dialog.ToneFriendlyToken,
	}}

	msgIn, msgChat, ok := inputFor(msg)
	require.True(t, ok)
	cbIn, cbChat, ok := inputFor(cb)
	require.True(t, ok)

	assert.Equal(t, domain.UserID(7), msgIn.UserID)
	assert.Equal(t, msgIn.UserID, cbIn.UserID)
	assert.Equal(t, dialog.ToneFriendlyToken, cbIn.Select)

	// Replies still go to the chat the update came from.
	assert.Equal(t, int64(-99), msgChat)
	assert.Equal(t, int64(-99), cbChat)
}

func TestInputFor_IgnoresUpdatesWithoutSender(t *testing.T) {
	_, _, ok := inputFor(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
		Text: "channel post",
	}})
	assert.False(t, ok)

	_, _, ok = inputFor(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		From: &tgbotapi.User{ID: 7},
		Data: "tone_official",
	}})
	assert.False(t, ok)

	_, _, ok = inputFor(tgbotapi.Update{})
	assert.False(t, ok)
}
