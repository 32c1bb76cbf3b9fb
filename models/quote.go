package models

import "time"

// Quote belongs to at most one character and one philosophy.
type Quote struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Text         string  `gorm:"column:text;not null;type:text" json:"text"`
	Author       string  `gorm:"not null;size:200" json:"author"`
	CharacterID  *uint   `gorm:"index" json:"characterId"`
	PhilosophyID *uint   `gorm:"index" json:"philosophyId"`
	Category     *string `gorm:"size:100" json:"category"`

	Character  *Character  `gorm:"foreignKey:CharacterID" json:"-"`
	Philosophy *Philosophy `gorm:"foreignKey:PhilosophyID" json:"-"`
}

// PinnedQuote records that a user pinned a quote. A user pins a quote at most once.
type PinnedQuote struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   string    `gorm:"not null;size:255;uniqueIndex:idx_pinned_user_quote" json:"userId"`
	QuoteID  uint      `gorm:"not null;uniqueIndex:idx_pinned_user_quote" json:"quoteId"`
	PinnedAt time.Time `gorm:"autoCreateTime" json:"pinnedAt"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Quote Quote `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE;" json:"-"`
}
