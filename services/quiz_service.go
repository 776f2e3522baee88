package services

import (
	"context"

	"quizforge/models"

	"gorm.io/gorm"
)

// QuizService wraps persistence for the Quiz entity. The ownership-scoped
// query shapes here are the authorization mechanism for every nested
// operation.
type QuizService struct {
	db    *gorm.DB
	cache *QuizCache
}

func NewQuizService(db *gorm.DB, cache *QuizCache) *QuizService {
	return &QuizService{db: db, cache: cache}
}

func (s *QuizService) Create(quiz *models.Quiz) error {
	return s.db.Create(quiz).Error
}

func (s *QuizService) FindByOwner(owner string) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("owner = ?", owner).Find(&quizzes).Error
	return quizzes, err
}

// FindOwned looks up a quiz by id and owner. gorm.ErrRecordNotFound covers
// both "absent" and "present but not owned" so callers can answer 404
// either way without leaking ownership.
func (s *QuizService) FindOwned(quizID, owner string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Where("id = ? AND owner = ?", quizID, owner).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindOwnedWithSection additionally requires the quiz's reference list to
// contain sectionID; that containment is what authorizes section-scoped
// operations transitively.
func (s *QuizService) FindOwnedWithSection(quizID, owner, sectionID string) (*models.Quiz, error) {
	quiz, err := s.FindOwned(quizID, owner)
	if err != nil {
		return nil, err
	}
	if !quiz.HasSection(sectionID) {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (s *QuizService) FindByID(quizID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Where("id = ?", quizID).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Update overwrites the editable fields of a quiz by id alone, with no
// ownership filter. Returns gorm.ErrRecordNotFound when the quiz is absent.
func (s *QuizService) Update(ctx context.Context, quizID, title, description, instructions string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return nil, err
	}
	quiz.Title = title
	quiz.Description = description
	quiz.Instructions = instructions
	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx, quizID)
	return &quiz, nil
}

// DeleteOwned removes a quiz scoped by id and owner and returns the
// deleted document. Sections and questions are not cascaded.
func (s *QuizService) DeleteOwned(ctx context.Context, quizID, owner string) (*models.Quiz, error) {
	quiz, err := s.FindOwned(quizID, owner)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Quiz{}, "id = ?", quiz.ID).Error; err != nil {
		return nil, err
	}
	s.invalidate(ctx, quizID)
	return quiz, nil
}

// PushSection appends a section id to the quiz's reference list.
func (s *QuizService) PushSection(ctx context.Context, quizID, sectionID string) error {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return err
	}
	quiz.Sections = append(quiz.Sections, sectionID)
	if err := s.db.Save(&quiz).Error; err != nil {
		return err
	}
	s.invalidate(ctx, quizID)
	return nil
}

// PullSection removes a section id from the quiz's reference list,
// preserving the order of the remaining ids.
func (s *QuizService) PullSection(ctx context.Context, quizID, sectionID string) error {
	var quiz models.Quiz
	if err := s.db.Where("id = ?", quizID).First(&quiz).Error; err != nil {
		return err
	}
	kept := quiz.Sections[:0]
	for _, id := range quiz.Sections {
		if id != sectionID {
			kept = append(kept, id)
		}
	}
	quiz.Sections = kept
	if err := s.db.Save(&quiz).Error; err != nil {
		return err
	}
	s.invalidate(ctx, quizID)
	return nil
}

// Detail assembles the nested quiz projection (quiz, its sections, their
// questions) scoped by id and owner, going through the cache when one is
// configured.
func (s *QuizService) Detail(ctx context.Context, quizID, owner string) (*models.QuizDetail, error) {
	if s.cache != nil {
		if detail, ok := s.cache.Get(ctx, quizID, owner); ok {
			return detail, nil
		}
	}

	quiz, err := s.FindOwned(quizID, owner)
	if err != nil {
		return nil, err
	}

	var sections []models.Section
	if err := s.db.Where("quiz_id = ?", quiz.ID).Find(&sections).Error; err != nil {
		return nil, err
	}

	detail := &models.QuizDetail{
		ID:           quiz.ID,
		Owner:        quiz.Owner,
		Title:        quiz.Title,
		Description:  quiz.Description,
		Instructions: quiz.Instructions,
		Sections:     make([]models.SectionDetail, 0, len(sections)),
		CreatedAt:    quiz.CreatedAt,
		UpdatedAt:    quiz.UpdatedAt,
	}

	for _, section := range sections {
		var questions []models.Question
		if err := s.db.Where("section_id = ?", section.ID).Find(&questions).Error; err != nil {
			return nil, err
		}
		detail.Sections = append(detail.Sections, models.SectionDetail{
			ID:        section.ID,
			QuizID:    section.QuizID,
			Name:      section.Name,
			Questions: questions,
			CreatedAt: section.CreatedAt,
			UpdatedAt: section.UpdatedAt,
		})
	}

	if s.cache != nil {
		s.cache.Set(ctx, detail)
	}
	return detail, nil
}

// InvalidateDetail drops any cached projection for the quiz. Mutations of
// sections and questions call this through their orchestrators.
func (s *QuizService) InvalidateDetail(ctx context.Context, quizID string) {
	s.invalidate(ctx, quizID)
}

func (s *QuizService) invalidate(ctx context.Context, quizID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, quizID)
	}
}
