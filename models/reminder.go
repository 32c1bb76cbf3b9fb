package models

import "time"

type ReminderFrequency string

const (
	FrequencyDaily   ReminderFrequency = "daily"
	FrequencyWeekly  ReminderFrequency = "weekly"
	FrequencyMonthly ReminderFrequency = "monthly"
)

type ReminderType string

const (
	ReminderQuote   ReminderType = "quote"
	ReminderJournal ReminderType = "journal"
	ReminderGoal    ReminderType = "goal"
)

// Reminder is a recurring nudge. Goals are reminders of type "goal".
// Time is wall-clock HH:MM.
type Reminder struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      string            `gorm:"not null;size:255;index" json:"userId"`
	Title       string            `gorm:"not null;size:200" json:"title"`
	Content     string            `gorm:"not null;type:text" json:"content"`
	Frequency   ReminderFrequency `gorm:"not null;size:20" json:"frequency"`
	Time        string            `gorm:"column:time;not null;size:5" json:"time"`
	IsActive    bool              `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
	Type        ReminderType      `gorm:"not null;size:20" json:"type"`
	ReferenceID *uint             `json:"referenceId"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}
