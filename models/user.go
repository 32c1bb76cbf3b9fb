package models

import "time"

// User is a person signed in through the identity provider. ID is the
// provider's subject claim.
type User struct {
	ID              string    `gorm:"primaryKey;size:255" json:"id"`
	Email           *string   `gorm:"uniqueIndex;size:255" json:"email"`
	FirstName       string    `gorm:"size:255" json:"firstName"`
	LastName        string    `gorm:"size:255" json:"lastName"`
	ProfileImageURL string    `gorm:"column:profile_image_url;size:1024" json:"profileImageUrl"`
	SetupCompleted  bool      `gorm:"default:false" json:"setupCompleted"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Characters   []UserCharacter  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Philosophies []UserPhilosophy `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}
