package notify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramAnnouncer talks to the Telegram Bot API. The bot token is per
// space, so a throwaway client handle is built per call instead of holding a
// long-lived authorized session.
type telegramAnnouncer struct {
	client *http.Client
}

func NewTelegramAnnouncer(timeout time.Duration) Announcer {
	return &telegramAnnouncer{
		client: &http.Client{Timeout: timeout},
	}
}

func (t *telegramAnnouncer) bot(token string) *tgbotapi.BotAPI {
	// Constructed by hand to skip the getMe probe tgbotapi.NewBotAPI issues.
	bot := &tgbotapi.BotAPI{
		Token:  token,
		Client: t.client,
		Buffer: 100,
	}
	bot.SetAPIEndpoint(tgbotapi.APIEndpoint)
	return bot
}

func (t *telegramAnnouncer) Send(ctx context.Context, target TelegramTarget, text string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var msg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(target.ChatID, 10, 64); err == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(target.ChatID, text)
	}

	sent, err := t.bot(target.BotToken).Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send telegram message: %w", err)
	}
	return int64(sent.MessageID), nil
}

func (t *telegramAnnouncer) Delete(ctx context.Context, target TelegramTarget, messageID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	del := tgbotapi.DeleteMessageConfig{MessageID: int(messageID)}
	if chatID, err := strconv.ParseInt(target.ChatID, 10, 64); err == nil {
		del.ChatID = chatID
	} else {
		del.ChannelUsername = target.ChatID
	}

	if _, err := t.bot(target.BotToken).Request(del); err != nil {
		return fmt.Errorf("delete telegram message: %w", err)
	}
	return nil
}
