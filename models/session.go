package models

import "time"

// Session is a server-side login session. The cookie only carries a signed
// reference to SID, so deleting the row logs the browser out.
type Session struct {
	SID            string    `gorm:"column:sid;primaryKey;size:64"`
	UserID         string    `gorm:"not null;size:255;index"`
	DailyQuoteID   *uint
	DailyQuoteDate string    `gorm:"size:10"`
	Expire         time.Time `gorm:"not null;index:idx_session_expire"`
	CreatedAt      time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// All lists every model for AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Character{},
		&Philosophy{},
		&Quote{},
		&UserCharacter{},
		&UserPhilosophy{},
		&JournalEntry{},
		&PinnedQuote{},
		&Reminder{},
		&Session{},
	}
}
