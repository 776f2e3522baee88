package handlers

import (
	"errors"

	"quizforge/middleware"
	"quizforge/models"
	"quizforge/services"
	"quizforge/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecordHandler struct {
	quizzes   *services.QuizService
	questions *services.QuestionService
	records   *services.RecordService
}

func NewRecordHandler(quizzes *services.QuizService, questions *services.QuestionService, records *services.RecordService) *RecordHandler {
	return &RecordHandler{quizzes: quizzes, questions: questions, records: records}
}

type addAnswerRequest struct {
	QuizID     string          `json:"quizId"`
	QuestionID string          `json:"questionId"`
	Options    []models.Option `json:"options"`
}

func answerOptions(v any) bool {
	opts, ok := v.([]models.Option)
	return ok && len(opts) >= 1 && opts[0].Option != "" && opts[0].Info != ""
}

// AddAnswer records one submitted response to one question. The quiz is
// located by id alone; answers are not ownership-scoped.
func (h *RecordHandler) AddAnswer(c *gin.Context) {
	var req addAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, []validation.FieldError{{Field: "", ErrorMsg: "invalid request body"}})
		return
	}

	result := validation.Validate(validation.Constraints{
		idConstraint("quizId", req.QuizID, "Quiz ID is mandatory and must be in a valid format"),
		idConstraint("questionId", req.QuestionID, "Question ID is mandatory and must be in a valid format"),
		{
			Name:  "options",
			Value: req.Options,
			Validator: validation.Validator{
				IsValid:      answerOptions,
				ErrorMessage: "The options field should not be empty and must have at least 1 options with the properties 'option' and 'info'",
			},
		},
	})
	if len(result.Errors) > 0 {
		validationFailed(c, result.Errors)
		return
	}

	if _, authed := middleware.CurrentIdentity(c); !authed {
		unauthorized(c, "This user is not authorized to access this endpoint")
		return
	}

	if _, err := h.quizzes.FindByID(req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Quiz or Section not found or invalid ID")
			return
		}
		fail(c, err)
		return
	}

	if _, err := h.questions.FindByQuiz(req.QuestionID, req.QuizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "Question not found or invalid ID")
			return
		}
		fail(c, err)
		return
	}

	answer := models.Answer{
		QuestionID: req.QuestionID,
		Value:      req.Options,
	}
	if err := h.records.CreateAnswer(&answer); err != nil {
		fail(c, err)
		return
	}
	created(c, answer)
}
