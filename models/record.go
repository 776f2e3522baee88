package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordStatus string

const (
	RecordPending   RecordStatus = "pending"
	RecordCompleted RecordStatus = "completed"
)

// Record aggregates the answers of one quiz run. No endpoint wires it up
// yet; answers are still created standalone.
type Record struct {
	ID        string       `json:"_id" gorm:"primaryKey"`
	Progress  []Answer     `json:"progress" gorm:"serializer:json"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = RecordPending
	}
	return nil
}
