package model

// Space is a registered physical location whose open/closed state is tracked
// through its event log. The password hash and Telegram bot token are never
// serialized into any response.
type Space struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"type:VARCHAR(128);not null;uniqueIndex" json:"name"`
	Logo         string  `gorm:"type:TEXT;not null" json:"logo"`
	URL          string  `gorm:"type:TEXT;not null" json:"url"`
	Address      string  `gorm:"type:TEXT;null" json:"address"`
	Lat          float64 `gorm:"null" json:"lat"`
	Lon          float64 `gorm:"null" json:"lon"`
	ContactEmail string  `gorm:"type:VARCHAR(254);not null" json:"contact_email"`

	PasswordHash string `gorm:"type:TEXT;not null" json:"-"`

	TelegramEnabled  bool   `gorm:"not null;default:false" json:"-"`
	TelegramChatID   string `gorm:"type:VARCHAR(128);null" json:"-"`
	TelegramBotToken string `gorm:"type:VARCHAR(128);null" json:"-"`
}

func (Space) TableName() string {
	return "space"
}

// TelegramConfigured reports whether announcements can actually be sent.
// Partial configuration counts as disabled.
func (s Space) TelegramConfigured() bool {
	return s.TelegramEnabled && s.TelegramChatID != "" && s.TelegramBotToken != ""
}
