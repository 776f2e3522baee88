package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section groups questions inside a quiz. QuizID is a lookup-only
// back-reference; Questions is the ordered list of question ids owned by
// this section.
type Section struct {
	ID        string    `json:"_id" gorm:"primaryKey"`
	QuizID    string    `json:"quizId" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Questions []string  `json:"questions" gorm:"serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Questions == nil {
		s.Questions = []string{}
	}
	return nil
}
