package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizforge/handlers"
	"quizforge/middleware"
	"quizforge/models"
	"quizforge/routes"
	"quizforge/services"
	"quizforge/validation"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	ownerOne = "1e684e82-f501-4840-a1af-e397a4248270"
	ownerTwo = "7ee2fd06-62f1-4a0a-8337-4b61d7c1ef5b"
)

// stubResolver lets a test switch identities (or drop them) between
// requests against the same router.
type stubResolver struct {
	id string
}

func (s *stubResolver) Resolve(_ *http.Request) (middleware.Identity, bool) {
	if s.id == "" {
		return middleware.Identity{}, false
	}
	return middleware.Identity{ID: s.id}, true
}

type testAPI struct {
	t        *testing.T
	router   *gin.Engine
	resolver *stubResolver
	db       *gorm.DB
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Quiz{},
		&models.Section{},
		&models.Question{},
		&models.Answer{},
		&models.Record{},
	))

	quizService := services.NewQuizService(db, nil)
	sectionService := services.NewSectionService(db)
	questionService := services.NewQuestionService(db)
	recordService := services.NewRecordService(db)

	resolver := &stubResolver{id: ownerOne}
	router := gin.New()
	routes.SetupRoutes(
		router,
		resolver,
		handlers.NewQuizHandler(quizService),
		handlers.NewSectionHandler(quizService, sectionService),
		handlers.NewQuestionHandler(quizService, sectionService, questionService),
		handlers.NewRecordHandler(quizService, questionService, recordService),
	)

	return &testAPI{t: t, router: router, resolver: resolver, db: db}
}

func (api *testAPI) as(identity string) { api.resolver.id = identity }

func (api *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	api.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(api.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type errorEnvelope struct {
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	return decode[errorEnvelope](t, w)
}

func fieldErrors(t *testing.T, env errorEnvelope) []validation.FieldError {
	t.Helper()
	var errs []validation.FieldError
	require.NoError(t, json.Unmarshal(env.Payload, &errs))
	return errs
}

// createQuiz seeds a quiz through the API and returns it.
func createQuiz(t *testing.T, api *testAPI, owner string) models.Quiz {
	t.Helper()
	w := api.do(http.MethodPost, "/api/quiz", gin.H{
		"owner":        owner,
		"title":        "T",
		"description":  "D",
		"instructions": "I",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Quiz](t, w)
}

// createSection seeds a section under the quiz using the current identity.
func createSection(t *testing.T, api *testAPI, quizID string) models.Section {
	t.Helper()
	w := api.do(http.MethodPost, "/api/section", gin.H{
		"quizId": quizID,
		"name":   "S",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Section](t, w)
}

// createQuestion seeds a question with the given order.
func createQuestion(t *testing.T, api *testAPI, quizID, sectionID string, order int) models.Question {
	t.Helper()
	w := api.do(http.MethodPost, "/api/question", gin.H{
		"quizId":    quizID,
		"sectionId": sectionID,
		"question":  "Q",
		"info":      "i",
		"order":     order,
		"type":      "single",
		"options":   []gin.H{{"option": "A", "info": "a"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Question](t, w)
}
