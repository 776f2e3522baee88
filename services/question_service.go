package services

import (
	"quizforge/models"

	"gorm.io/gorm"
)

// QuestionService wraps persistence for the Question entity, including the
// section-scoped order bookkeeping.
type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) Create(question *models.Question) error {
	return s.db.Create(question).Error
}

// OrderTaken reports whether the section already holds a question with the
// given order value.
func (s *QuestionService) OrderTaken(sectionID string, order int) (bool, error) {
	var count int64
	err := s.db.Model(&models.Question{}).
		Where(`section_id = ? AND "order" = ?`, sectionID, order).
		Count(&count).Error
	return count > 0, err
}

// FindScoped locates a question by id within its section.
func (s *QuestionService) FindScoped(questionID, sectionID string) (*models.Question, error) {
	var question models.Question
	err := s.db.Where("id = ? AND section_id = ?", questionID, sectionID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByQuiz locates a question by id within a quiz, regardless of section.
func (s *QuestionService) FindByQuiz(questionID, quizID string) (*models.Question, error) {
	var question models.Question
	err := s.db.Where("id = ? AND quiz_id = ?", questionID, quizID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListBySection returns the section's questions sorted by ascending order.
func (s *QuestionService) ListBySection(sectionID, quizID string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("section_id = ? AND quiz_id = ?", sectionID, quizID).
		Order(`"order" ASC`).
		Find(&questions).Error
	return questions, err
}

// UpdateScoped overwrites the editable fields of a question located by id
// within its section.
func (s *QuestionService) UpdateScoped(questionID, sectionID string, update *models.Question) (*models.Question, error) {
	question, err := s.FindScoped(questionID, sectionID)
	if err != nil {
		return nil, err
	}
	question.Question = update.Question
	question.Info = update.Info
	question.Order = update.Order
	question.Type = update.Type
	question.Options = update.Options
	if err := s.db.Save(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteScoped removes a question located by id within its section and
// returns the deleted document.
func (s *QuestionService) DeleteScoped(questionID, sectionID string) (*models.Question, error) {
	question, err := s.FindScoped(questionID, sectionID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Question{}, "id = ?", questionID).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// CloseOrderGap decrements the order of every question in the section with
// an order strictly greater than the given one. Best-effort bulk update;
// pre-existing gaps are not repaired.
func (s *QuestionService) CloseOrderGap(sectionID string, deletedOrder int) error {
	return s.db.Model(&models.Question{}).
		Where(`section_id = ? AND "order" > ?`, sectionID, deletedOrder).
		UpdateColumn("order", gorm.Expr(`"order" - 1`)).Error
}
