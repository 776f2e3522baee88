package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionType string

const (
	SingleChoice   QuestionType = "single"
	MultipleChoice QuestionType = "multiple"
	Text           QuestionType = "text"
	Date           QuestionType = "date"
	Boolean        QuestionType = "boolean"
	Composed       QuestionType = "composed"
)

// Option is embedded in questions and answers, never stored on its own.
type Option struct {
	Option   string         `json:"option"`
	Info     string         `json:"info,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Question belongs to exactly one section. Order is a section-scoped
// positive integer, unique among the section's live questions.
type Question struct {
	ID        string       `json:"_id" gorm:"primaryKey"`
	QuizID    string       `json:"quizId" gorm:"not null;index"`
	SectionID string       `json:"sectionId" gorm:"not null;index"`
	Question  string       `json:"question" gorm:"not null"`
	Info      string       `json:"info,omitempty"`
	Order     int          `json:"order" gorm:"column:order"`
	Type      QuestionType `json:"type" gorm:"not null"`
	Options   []Option     `json:"options" gorm:"serializer:json"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave enforces the type enum the way the document schema would;
// violations surface as internal errors, not validation errors.
func (q *Question) BeforeSave(tx *gorm.DB) error {
	switch q.Type {
	case SingleChoice, MultipleChoice, Text, Date, Boolean, Composed:
		return nil
	default:
		return fmt.Errorf("invalid question type %q", q.Type)
	}
}
