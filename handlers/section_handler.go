package handlers

import (
	"errors"
	"fmt"

	"quizforge/middleware"
	"quizforge/models"
	"quizforge/services"
	"quizforge/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SectionHandler struct {
	quizzes  *services.QuizService
	sections *services.SectionService
}

func NewSectionHandler(quizzes *services.QuizService, sections *services.SectionService) *SectionHandler {
	return &SectionHandler{quizzes: quizzes, sections: sections}
}

type sectionRequest struct {
	QuizID string `json:"quizId"`
	Name   string `json:"name"`
}

// Create adds a section to an owned quiz and links it into the quiz's
// reference list.
func (h *SectionHandler) Create(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	result := validation.Validate(validation.Constraints{
		{
			Name:  "quizId",
			Value: req.QuizID,
			Validator: validation.Validator{
				IsValid:      validID,
				ErrorMessage: "A valid Quiz ID is mandatory",
			},
		},
		{
			Name:  "name",
			Value: req.Name,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The name field should not be empty",
			},
		},
	})
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	if _, err := h.quizzes.FindOwned(req.QuizID, identity.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz not found or wrong owner")
			return
		}
		fail(c, err)
		return
	}

	section := models.Section{QuizID: req.QuizID, Name: req.Name}
	if err := h.sections.Create(&section); err != nil {
		fail(c, err)
		return
	}
	if err := h.quizzes.PushSection(c.Request.Context(), req.QuizID, section.ID); err != nil {
		fail(c, err)
		return
	}
	created(c, section)
}

// Update renames a section. The parent quiz authorizes the operation; the
// section itself is then located by id alone.
func (h *SectionHandler) Update(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	result := validation.Validate(validation.Constraints{
		{
			Name:  "sectionId",
			Value: c.Param("sectionId"),
			Validator: validation.Validator{
				IsValid:      validID,
				ErrorMessage: "A valid Quiz ID is mandatory",
			},
		},
		{
			Name:  "name",
			Value: req.Name,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The name field should not be empty",
			},
		},
		{
			Name:  "quizId",
			Value: req.QuizID,
			Validator: validation.Validator{
				IsValid:      validID,
				ErrorMessage: "A valid Quiz ID is mandatory",
			},
		},
	})
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	if _, err := h.quizzes.FindOwned(req.QuizID, identity.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "the quiz of this section was not found")
			return
		}
		fail(c, err)
		return
	}

	section, err := h.sections.UpdateName(c.Param("sectionId"), req.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "Section not found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	h.quizzes.InvalidateDetail(c.Request.Context(), req.QuizID)
	ok(c, section)
}

// Delete removes a section and pulls its id from the parent quiz's
// reference list. The section's questions are left in place.
func (h *SectionHandler) Delete(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	result := validation.Validate(validation.Constraints{
		{
			Name:  "sectionId",
			Value: c.Param("sectionId"),
			Validator: validation.Validator{
				IsValid:      validID,
				ErrorMessage: "A valid Section ID is mandatory",
			},
		},
		{
			Name:  "quizId",
			Value: req.QuizID,
			Validator: validation.Validator{
				IsValid:      validID,
				ErrorMessage: "A valid Quiz ID is mandatory",
			},
		},
	})
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	if _, err := h.quizzes.FindOwned(req.QuizID, identity.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Sorry, there is no Quiz matching this quizId")
			return
		}
		fail(c, err)
		return
	}

	section, err := h.sections.Delete(c.Param("sectionId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "Sorry, there is no Section matching this sectionId")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.quizzes.PullSection(c.Request.Context(), req.QuizID, section.ID); err != nil {
		fail(c, err)
		return
	}
	ok(c, fmt.Sprintf("The section %q has been succesfully deleted", section.Name))
}
