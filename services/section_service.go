package services

import (
	"quizforge/models"

	"gorm.io/gorm"
)

// SectionService wraps persistence for the Section entity.
type SectionService struct {
	db *gorm.DB
}

func NewSectionService(db *gorm.DB) *SectionService {
	return &SectionService{db: db}
}

func (s *SectionService) Create(section *models.Section) error {
	return s.db.Create(section).Error
}

// UpdateName renames a section located by id alone; the caller has already
// authorized against the parent quiz.
func (s *SectionService) UpdateName(sectionID, name string) (*models.Section, error) {
	var section models.Section
	if err := s.db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return nil, err
	}
	section.Name = name
	if err := s.db.Save(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// Delete removes a section by id and returns the deleted document. Its
// questions are not cascaded.
func (s *SectionService) Delete(sectionID string) (*models.Section, error) {
	var section models.Section
	if err := s.db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Section{}, "id = ?", sectionID).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// PushQuestion appends a question id to the section's reference list.
func (s *SectionService) PushQuestion(sectionID, questionID string) error {
	var section models.Section
	if err := s.db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return err
	}
	section.Questions = append(section.Questions, questionID)
	return s.db.Save(&section).Error
}

// PullQuestion removes a question id from the section's reference list.
func (s *SectionService) PullQuestion(sectionID, questionID string) error {
	var section models.Section
	if err := s.db.Where("id = ?", sectionID).First(&section).Error; err != nil {
		return err
	}
	kept := section.Questions[:0]
	for _, id := range section.Questions {
		if id != questionID {
			kept = append(kept, id)
		}
	}
	section.Questions = kept
	return s.db.Save(&section).Error
}
