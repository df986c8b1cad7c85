package model

import "time"

// Note — серверная модель заметки.
type Note struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"not null" json:"body"`
	Archived  bool      `gorm:"not null;default:false;index" json:"archived"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
