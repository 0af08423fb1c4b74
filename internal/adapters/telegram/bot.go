// Package telegram adapts Telegram updates to dialog inputs and renders
// dialog replies back as messages and keyboards. It holds no dialog logic.
package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/Aliya0322/telegram-bot/internal/app/dialog"
	"github.com/Aliya0322/telegram-bot/internal/domain"
	"github.com/Aliya0322/telegram-bot/internal/observability"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	dialog *dialog.Service
}

func New(token string, svc *dialog.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:    api,
		dialog: svc,
	}, nil
}

// Username returns the bot account name reported by Telegram.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run long-polls for updates until ctx is cancelled. Each update is handled
// in its own goroutine; ordering within one user's session is enforced by
// the dialog service, not here.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx = observability.WithRequestID(ctx, uuid.NewString())
	log := observability.LoggerFromContext(ctx)

	in, chatID, ok := inputFor(update)
	if !ok {
		return
	}

	if cb := update.CallbackQuery; cb != nil {
		// Dismiss the client-side loading indicator.
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			log.Warn("answer callback failed", "error", err)
		}
	}

	replies := b.dialog.Handle(ctx, in)
	b.send(chatID, replies, log)
}

// inputFor maps an update to the dialog input plus the chat to reply in.
// Both paths key the session by the sender's user id, so a flow started by
// a message and advanced by a button tap stay in one session even where
// chat id and user id differ (group chats).
func inputFor(update tgbotapi.Update) (dialog.Input, int64, bool) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cb := update.CallbackQuery
		return dialog.Input{
			UserID: domain.UserID(cb.From.ID),
			Select: cb.Data,
		}, cb.Message.Chat.ID, true

	case update.Message != nil && update.Message.From != nil:
		m := update.Message
		return dialog.Input{
			UserID: domain.UserID(m.From.ID),
			Text:   m.Text,
		}, m.Chat.ID, true
	}

	return dialog.Input{}, 0, false
}

func (b *Bot) send(chatID int64, replies []dialog.Reply, log *slog.Logger) {
	for _, r := range replies {
		msg := tgbotapi.NewMessage(chatID, r.Text)
		msg.ParseMode = tgbotapi.ModeHTML

		switch r.Keyboard {
		case dialog.KeyboardMenu:
			msg.ReplyMarkup = mainMenu()
		case dialog.KeyboardTone:
			msg.ReplyMarkup = toneKeyboard()
		}

		if _, err := b.api.Send(msg); err != nil {
			log.Error("send message failed", "chat_id", chatID, "error", err)
		}
	}
}

func mainMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(dialog.MenuSpellCheck),
			tgbotapi.NewKeyboardButton(dialog.MenuWriteEmail),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(dialog.MenuEssayPlan),
			tgbotapi.NewKeyboardButton(dialog.MenuInviteFriend),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func toneKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📜 Official", dialog.ToneOfficialToken),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("😊 Friendly", dialog.ToneFriendlyToken),
		),
	)
}
