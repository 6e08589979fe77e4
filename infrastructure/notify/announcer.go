// Package notify implements the best-effort Telegram side channel. Nothing in
// this package may fail the request path that triggered it.
package notify

import "context"

// TelegramTarget identifies the channel and credential used for one
// announcement. Both come from the target space's row.
type TelegramTarget struct {
	ChatID   string
	BotToken string
}

// Announcer is the outbound messaging contract. Tests substitute a spy.
type Announcer interface {
	// Send posts an announcement and returns the message id needed to delete
	// it later.
	Send(ctx context.Context, target TelegramTarget, text string) (int64, error)
	// Delete removes a previously sent announcement.
	Delete(ctx context.Context, target TelegramTarget, messageID int64) error
}
