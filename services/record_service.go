package services

import (
	"quizforge/models"

	"gorm.io/gorm"
)

// RecordService wraps persistence for submitted answers. Answers are not
// yet linked into Record aggregates; they are stored standalone.
type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

func (s *RecordService) CreateAnswer(answer *models.Answer) error {
	return s.db.Create(answer).Error
}
