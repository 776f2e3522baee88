package routes

import (
	"net/http"

	"quizforge/handlers"
	"quizforge/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	resolver middleware.Resolver,
	quizHandler *handlers.QuizHandler,
	sectionHandler *handlers.SectionHandler,
	questionHandler *handlers.QuestionHandler,
	recordHandler *handlers.RecordHandler,
) {
	router.Use(middleware.CORS())
	router.Use(middleware.Authenticate(resolver))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, "pong")
	})

	api := router.Group("/api")
	{
		quiz := api.Group("/quiz")
		{
			quiz.POST("", quizHandler.Create)
			quiz.GET("", quizHandler.GetAll)
			quiz.GET("/:quizId", quizHandler.GetOne)
			quiz.PUT("/:quizId", quizHandler.Update)
			quiz.DELETE("/:quizId", quizHandler.Delete)
		}

		section := api.Group("/section")
		{
			section.POST("", sectionHandler.Create)
			section.PUT("/:sectionId", sectionHandler.Update)
			section.DELETE("/:sectionId", sectionHandler.Delete)
		}

		question := api.Group("/question")
		{
			question.POST("", questionHandler.Create)
			question.GET("", questionHandler.GetFromSection)
			question.GET("/:questionId", questionHandler.GetOne)
			question.PUT("/:questionId", questionHandler.Update)
			question.DELETE("/:questionId", questionHandler.Delete)
		}

		record := api.Group("/record")
		{
			record.POST("/answer", recordHandler.AddAnswer)
		}
	}
}
