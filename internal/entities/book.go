package entities

import (
	"time"
)

// DefaultGenre is stored when a book is added without a genre.
const DefaultGenre = "Unknown"

// Book is a single catalog entry. IDs are assigned by the database and
// never change; the only mutable field after creation is IsRead.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512;not null" json:"title"`
	Author    string    `gorm:"index;size:256;not null" json:"author"`
	Genre     string    `gorm:"size:128" json:"genre"`
	Year      int       `gorm:"index" json:"year"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
