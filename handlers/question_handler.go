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

type QuestionHandler struct {
	quizzes   *services.QuizService
	sections  *services.SectionService
	questions *services.QuestionService
}

func NewQuestionHandler(quizzes *services.QuizService, sections *services.SectionService, questions *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{quizzes: quizzes, sections: sections, questions: questions}
}

type questionRequest struct {
	QuizID    string          `json:"quizId"`
	SectionID string          `json:"sectionId"`
	Question  string          `json:"question"`
	Info      string          `json:"info"`
	Order     int             `json:"order"`
	Type      string          `json:"type"`
	Options   []models.Option `json:"options"`
}

func questionFieldConstraints(req questionRequest) validation.Constraints {
	return validation.Constraints{
		{
			Name:  "question",
			Value: req.Question,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The question field should not be empty",
			},
		},
		{
			Name:  "info",
			Value: req.Info,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The info field should not be empty",
			},
		},
		{
			Name:  "order",
			Value: req.Order,
			Validator: validation.Validator{
				IsValid:      positiveInt,
				ErrorMessage: "The order field should not be empty",
			},
		},
		{
			Name:  "type",
			Value: req.Type,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The type field should not be empty",
			},
		},
		{
			Name:  "options",
			Value: req.Options,
			Validator: validation.Validator{
				IsValid:      atLeastOneOption,
				ErrorMessage: "The options field should not be empty and must have at least 1 options",
			},
		},
	}
}

func idConstraint(name, value, message string) validation.Field {
	return validation.Field{
		Name:  name,
		Value: value,
		Validator: validation.Validator{
			IsValid:      validID,
			ErrorMessage: message,
		},
	}
}

// Create adds a question to a section. The parent quiz must be owned by
// the requester and must already contain the section in its reference
// list; a taken order value is a conflict, not an auto-increment.
func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	constraints := validation.Constraints{
		idConstraint("quizId", req.QuizID, "Quiz ID is mandatory and must be in a valid format"),
		idConstraint("sectionId", req.SectionID, "Section ID is mandatory and must be in a valid format"),
	}
	constraints = append(constraints, questionFieldConstraints(req)...)

	result := validation.Validate(constraints)
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	if _, err := h.quizzes.FindOwnedWithSection(req.QuizID, identity.ID, req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz or Section not found or invalid ID")
			return
		}
		fail(c, err)
		return
	}

	taken, err := h.questions.OrderTaken(req.SectionID, req.Order)
	if err != nil {
		fail(c, err)
		return
	}
	if taken {
		forbidden(c, "Question with this order already exists")
		return
	}

	question := models.Question{
		QuizID:    req.QuizID,
		SectionID: req.SectionID,
		Question:  req.Question,
		Info:      req.Info,
		Order:     req.Order,
		Type:      models.QuestionType(req.Type),
		Options:   req.Options,
	}
	if err := h.questions.Create(&question); err != nil {
		fail(c, err)
		return
	}
	if err := h.sections.PushQuestion(req.SectionID, question.ID); err != nil {
		fail(c, err)
		return
	}
	h.quizzes.InvalidateDetail(c.Request.Context(), req.QuizID)
	created(c, question)
}

// Update edits a question located by id within its section, after the
// parent quiz authorizes the operation.
func (h *QuestionHandler) Update(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	constraints := validation.Constraints{
		idConstraint("quizId", req.QuizID, "Quiz ID is mandatory and must be in a valid format"),
		idConstraint("sectionId", req.SectionID, "Section ID is mandatory and must be in a valid format"),
		idConstraint("questionId", c.Param("questionId"), "Question ID is mandatory and must be in a valid format"),
	}
	constraints = append(constraints, questionFieldConstraints(req)...)

	result := validation.Validate(constraints)
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	if _, err := h.quizzes.FindOwnedWithSection(req.QuizID, identity.ID, req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz not found or invalid Quiz ID")
			return
		}
		fail(c, err)
		return
	}

	question, err := h.questions.UpdateScoped(c.Param("questionId"), req.SectionID, &models.Question{
		Question: req.Question,
		Info:     req.Info,
		Order:    req.Order,
		Type:     models.QuestionType(req.Type),
		Options:  req.Options,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "Section or Question not found or invalid Section ID")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	h.quizzes.InvalidateDetail(c.Request.Context(), req.QuizID)
	ok(c, question)
}

// Delete removes a question, pulls it from the section's reference list,
// and closes the order gap by decrementing every later-ordered sibling.
func (h *QuestionHandler) Delete(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	result := validation.Validate(validation.Constraints{
		idConstraint("quizId", req.QuizID, "Quiz ID is mandatory and must be in a valid format"),
		idConstraint("sectionId", req.SectionID, "Section ID is mandatory and must be in a valid format"),
		idConstraint("questionId", c.Param("questionId"), "Question ID is mandatory and must be in a valid format"),
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

	if _, err := h.quizzes.FindOwnedWithSection(req.QuizID, identity.ID, req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz not found")
			return
		}
		fail(c, err)
		return
	}

	question, err := h.questions.DeleteScoped(c.Param("questionId"), req.SectionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "Question not found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.sections.PullQuestion(req.SectionID, question.ID); err != nil {
		fail(c, err)
		return
	}
	if err := h.questions.CloseOrderGap(req.SectionID, question.Order); err != nil {
		fail(c, err)
		return
	}
	h.quizzes.InvalidateDetail(c.Request.Context(), req.QuizID)
	ok(c, fmt.Sprintf("The question %s has been succesfully deleted", question.ID))
}

// GetFromSection lists a section's questions sorted by order.
func (h *QuestionHandler) GetFromSection(c *gin.Context) {
	quizID := c.Query("quizId")
	sectionID := c.Query("sectionId")

	result := validation.Validate(validation.Constraints{
		idConstraint("quizId", quizID, "Quiz ID is mandatory and must be in a valid format"),
		idConstraint("sectionId", sectionID, "Section ID is mandatory and must be in a valid format"),
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

	if _, err := h.quizzes.FindOwned(quizID, identity.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz not found")
			return
		}
		fail(c, err)
		return
	}

	questions, err := h.questions.ListBySection(sectionID, quizID)
	if err != nil {
		fail(c, err)
		return
	}
	if len(questions) == 0 {
		notFound(c, "No questions found for this section")
		return
	}
	ok(c, questions)
}

// GetOne fetches a single question scoped by its section and owned quiz.
func (h *QuestionHandler) GetOne(c *gin.Context) {
	quizID := c.Query("quizId")
	sectionID := c.Query("sectionId")

	result := validation.Validate(validation.Constraints{
		idConstraint("quizId", quizID, "Quiz ID is mandatory and must be in a valid format"),
		idConstraint("sectionId", sectionID, "Section ID is mandatory and must be in a valid format"),
		idConstraint("questionId", c.Param("questionId"), "Question ID is mandatory and must be in a valid format"),
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

	if _, err := h.quizzes.FindOwnedWithSection(quizID, identity.ID, sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz not found")
			return
		}
		fail(c, err)
		return
	}

	question, err := h.questions.FindScoped(c.Param("questionId"), sectionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "Question or section not found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, question)
}
