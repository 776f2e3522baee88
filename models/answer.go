package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is one submitted response to one question. Value carries the
// selected option-shaped values as given by the client.
type Answer struct {
	ID         string    `json:"_id" gorm:"primaryKey"`
	QuestionID string    `json:"question" gorm:"not null;index"`
	Value      []Option  `json:"value" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
