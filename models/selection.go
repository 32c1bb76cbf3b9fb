package models

import "time"

// UserCharacter links a user to a character chosen during setup or in settings.
type UserCharacter struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;size:255;index" json:"userId"`
	CharacterID uint      `gorm:"not null" json:"characterId"`
	SelectedAt  time.Time `gorm:"autoCreateTime" json:"selectedAt"`

	Character Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE;" json:"-"`
}

// UserPhilosophy links a user to a philosophy.
type UserPhilosophy struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;size:255;index" json:"userId"`
	PhilosophyID uint      `gorm:"not null" json:"philosophyId"`
	SelectedAt   time.Time `gorm:"autoCreateTime" json:"selectedAt"`

	Philosophy Philosophy `gorm:"foreignKey:PhilosophyID;constraint:OnDelete:CASCADE;" json:"-"`
}
