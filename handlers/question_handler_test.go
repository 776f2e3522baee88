package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"quizforge/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestion(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)

	w := api.do(http.MethodPost, "/api/question", gin.H{
		"quizId":    quiz.ID,
		"sectionId": section.ID,
		"question":  "Q1",
		"info":      "i",
		"order":     1,
		"type":      "single",
		"options":   []gin.H{{"option": "A", "info": "a"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	question := decode[models.Question](t, w)
	assert.NotEmpty(t, question.ID)
	assert.Equal(t, 1, question.Order)
	assert.Equal(t, models.SingleChoice, question.Type)
	require.Len(t, question.Options, 1)
	assert.Equal(t, "A", question.Options[0].Option)

	var stored models.Section
	require.NoError(t, api.db.First(&stored, "id = ?", section.ID).Error)
	assert.Equal(t, []string{question.ID}, stored.Questions)
}

func TestCreateQuestionDuplicateOrderIsForbidden(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)
	createQuestion(t, api, quiz.ID, section.ID, 1)

	w := api.do(http.MethodPost, "/api/question", gin.H{
		"quizId":    quiz.ID,
		"sectionId": section.ID,
		"question":  "Q2",
		"info":      "i",
		"order":     1,
		"type":      "single",
		"options":   []gin.H{{"option": "B", "info": "b"}},
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Forbidden", env.Message)
	assert.Contains(t, string(env.Payload), "order already exists")
}

func TestCreateQuestionSectionNotInQuizReferenceListIs404(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	other := createQuiz(t, api, ownerOne)
	foreignSection := createSection(t, api, other.ID)

	// Section exists but belongs to another quiz's reference list.
	w := api.do(http.MethodPost, "/api/question", gin.H{
		"quizId":    quiz.ID,
		"sectionId": foreignSection.ID,
		"question":  "Q",
		"info":      "i",
		"order":     1,
		"type":      "single",
		"options":   []gin.H{{"option": "A", "info": "a"}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateQuestionValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/question", gin.H{
		"quizId":    "bad",
		"sectionId": "",
		"question":  "Q",
		"info":      "i",
		"order":     0,
		"type":      "single",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := fieldErrors(t, decodeEnvelope(t, w))
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"quizId", "sectionId", "order", "options"}, fields)
}

func TestUpdateQuestion(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)
	question := createQuestion(t, api, quiz.ID, section.ID, 1)

	w := api.do(http.MethodPut, "/api/question/"+question.ID, gin.H{
		"quizId":    quiz.ID,
		"sectionId": section.ID,
		"question":  "Edited",
		"info":      "i2",
		"order":     2,
		"type":      "multiple",
		"options":   []gin.H{{"option": "A", "info": "a"}, {"option": "B", "info": "b"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[models.Question](t, w)
	assert.Equal(t, "Edited", updated.Question)
	assert.Equal(t, 2, updated.Order)
	assert.Equal(t, models.MultipleChoice, updated.Type)
	assert.Len(t, updated.Options, 2)
}

func TestDeleteQuestionRenumbersLaterSiblings(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)

	first := createQuestion(t, api, quiz.ID, section.ID, 1)
	second := createQuestion(t, api, quiz.ID, section.ID, 2)
	third := createQuestion(t, api, quiz.ID, section.ID, 3)

	w := api.do(http.MethodDelete, "/api/question/"+second.ID, gin.H{
		"quizId":    quiz.ID,
		"sectionId": section.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fmt.Sprintf("%q", fmt.Sprintf("The question %s has been succesfully deleted", second.ID)), w.Body.String())

	var remaining []models.Question
	require.NoError(t, api.db.Where("section_id = ?", section.ID).Order(`"order" ASC`).Find(&remaining).Error)
	require.Len(t, remaining, 2)
	assert.Equal(t, first.ID, remaining[0].ID)
	assert.Equal(t, 1, remaining[0].Order)
	assert.Equal(t, third.ID, remaining[1].ID)
	assert.Equal(t, 2, remaining[1].Order, "former order-3 question closes the gap")

	var stored models.Section
	require.NoError(t, api.db.First(&stored, "id = ?", section.ID).Error)
	assert.Equal(t, []string{first.ID, third.ID}, stored.Questions)
}

func TestGetQuestionsFromSectionSortedByOrder(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)
	createQuestion(t, api, quiz.ID, section.ID, 2)
	createQuestion(t, api, quiz.ID, section.ID, 1)

	w := api.do(http.MethodGet, "/api/question?quizId="+quiz.ID+"&sectionId="+section.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	questions := decode[[]models.Question](t, w)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].Order)
	assert.Equal(t, 2, questions[1].Order)
}

func TestGetQuestionsFromEmptySectionIs404(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)

	w := api.do(http.MethodGet, "/api/question?quizId="+quiz.ID+"&sectionId="+section.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, string(decodeEnvelope(t, w).Payload), "No questions found")
}

func TestGetOneQuestion(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)
	question := createQuestion(t, api, quiz.ID, section.ID, 1)

	w := api.do(http.MethodGet, "/api/question/"+question.ID+"?quizId="+quiz.ID+"&sectionId="+section.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, question.ID, decode[models.Question](t, w).ID)
}

func TestQuestionEndpointsUnauthorized(t *testing.T) {
	api := newTestAPI(t)
	quiz := createQuiz(t, api, ownerOne)
	section := createSection(t, api, quiz.ID)
	question := createQuestion(t, api, quiz.ID, section.ID, 1)

	api.as("")
	body := gin.H{
		"quizId":    quiz.ID,
		"sectionId": section.ID,
		"question":  "Q",
		"info":      "i",
		"order":     2,
		"type":      "single",
		"options":   []gin.H{{"option": "A", "info": "a"}},
	}

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPost, "/api/question", body).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodPut, "/api/question/"+question.ID, body).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodDelete, "/api/question/"+question.ID, body).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/question?quizId="+quiz.ID+"&sectionId="+section.ID, nil).Code)
}
