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

type QuizHandler struct {
	quizzes *services.QuizService
}

func NewQuizHandler(quizzes *services.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

type quizRequest struct {
	Owner        string `json:"owner"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

func createQuizConstraints(req quizRequest) validation.Constraints {
	return validation.Constraints{
		{
			Name:  "owner",
			Value: req.Owner,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "Every Quiz needs an owner",
			},
		},
		{
			Name:  "title",
			Value: req.Title,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "A title is mandatory for a Quiz",
			},
		},
		{
			Name:  "description",
			Value: req.Description,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The description field should not be empty",
			},
		},
		{
			Name:  "instructions",
			Value: req.Instructions,
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "The instructions field should not be empty",
			},
		},
	}
}

// Create stores a new quiz. The owner comes from the request body; no
// identity is consulted.
func (h *QuizHandler) Create(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	result := validation.Validate(createQuizConstraints(req))
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	quiz := models.Quiz{
		Owner:        req.Owner,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
	}
	if err := h.quizzes.Create(&quiz); err != nil {
		fail(c, err)
		return
	}
	created(c, quiz)
}

// GetAll lists the requester's quizzes.
func (h *QuizHandler) GetAll(c *gin.Context) {
	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	quizzes, err := h.quizzes.FindByOwner(identity.ID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, quizzes)
}

// GetOne serves the aggregated quiz projection, scoped by id and owner.
// A quiz owned by someone else answers 404, indistinguishable from a
// missing one.
func (h *QuizHandler) GetOne(c *gin.Context) {
	result := validation.Validate(validation.Constraints{
		{
			Name:  "quizId",
			Value: c.Param("quizId"),
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

	detail, err := h.quizzes.Detail(c.Request.Context(), c.Param("quizId"), identity.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "The quiz you're trying to get has not been found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, detail)
}

// Update edits a quiz by id. No ownership filter is applied here; the
// quiz is located by id alone.
func (h *QuizHandler) Update(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	constraints := validation.Constraints{
		{
			Name:  "quizId",
			Value: c.Param("quizId"),
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "Quiz ID is mandatory",
			},
		},
	}
	constraints = append(constraints, createQuizConstraints(req)[1:]...)

	result := validation.Validate(constraints)
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	quiz, err := h.quizzes.Update(c.Request.Context(), c.Param("quizId"), req.Title, req.Description, req.Instructions)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "not Found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, quiz)
}

// Delete removes a quiz scoped by id and owner. Unlike the other guarded
// endpoints this one answers 403, not 401, when the identity is missing.
func (h *QuizHandler) Delete(c *gin.Context) {
	result := validation.Validate(validation.Constraints{
		{
			Name:  "quizId",
			Value: c.Param("quizId"),
			Validator: validation.Validator{
				IsValid:      nonEmptyString,
				ErrorMessage: "Quiz ID is mandatory",
			},
		},
	})
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	identity, authed := middleware.CurrentIdentity(c)
	if !authed {
		forbidden(c, "User id is required to delete quizzes")
		return
	}

	quiz, err := h.quizzes.DeleteOwned(c.Request.Context(), c.Param("quizId"), identity.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, "The quiz you're trying to delete has not been found")
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, fmt.Sprintf("The quiz %s has been successfully deleted", quiz.ID))
}
