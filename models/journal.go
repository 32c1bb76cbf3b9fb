package models

import "time"

// JournalEntry is a free-form reflection, optionally about a quote.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;size:255;index" json:"userId"`
	Text      string    `gorm:"column:text;not null;type:text" json:"text"`
	QuoteID   *uint     `json:"quoteId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	IsPinned  bool      `gorm:"default:false" json:"isPinned"`

	User  User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Quote *Quote `gorm:"foreignKey:QuoteID;constraint:OnDelete:SET NULL;" json:"-"`
}
