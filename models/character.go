package models

// Character is a historical or contemporary figure whose quotes a user can follow.
type Character struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;size:200" json:"name"`
	Description string  `gorm:"not null;size:500" json:"description"`
	Category    string  `gorm:"not null;size:100" json:"category"`
	ImageURL    *string `gorm:"column:image_url;size:1024" json:"imageUrl"`
	Biography   *string `gorm:"type:text" json:"biography"`
}

// Philosophy is a named school of thought.
type Philosophy struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:200" json:"name"`
	Description string `gorm:"not null;type:text" json:"description"`
}
