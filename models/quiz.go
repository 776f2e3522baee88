package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quiz is the root document of the authoring hierarchy. Sections holds the
// ordered ids of the sections that belong to this quiz; containment in this
// list is what authorizes nested operations.
type Quiz struct {
	ID           string    `json:"_id" gorm:"primaryKey"`
	Owner        string    `json:"owner" gorm:"not null;index"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Instructions string    `json:"instructions"`
	Sections     []string  `json:"sections" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Sections == nil {
		q.Sections = []string{}
	}
	return nil
}

// HasSection reports whether sectionID is in the quiz's reference list.
func (q *Quiz) HasSection(sectionID string) bool {
	for _, id := range q.Sections {
		if id == sectionID {
			return true
		}
	}
	return false
}
