package routes

import (
	"net/http"

	"quizboard/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	gameHandler *handlers.GameHandler,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	teamHandler *handlers.TeamHandler,
) {
	// API routes
	api := router.Group("/api")
	{
		games := api.Group("/games")
		{
			games.POST("", gameHandler.CreateGame)
			games.GET("", gameHandler.ListGames)
			games.GET("/:id", gameHandler.GetGame)
			games.DELETE("/:id", gameHandler.DeleteGame)
			games.POST("/:id/start", gameHandler.StartGame)
			games.POST("/:id/finish", gameHandler.FinishGame)

			games.POST("/:id/categories", categoryHandler.CreateCategory)
			games.GET("/:id/categories", categoryHandler.ListCategoriesByGame)

			games.POST("/:id/teams", teamHandler.CreateTeam)
			games.GET("/:id/teams", teamHandler.ListTeamsByGame)
			games.GET("/:id/ranking", teamHandler.GetRanking)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)

			categories.POST("/:id/questions", questionHandler.CreateQuestion)
			categories.GET("/:id/questions", questionHandler.ListQuestionsByCategory)
		}

		questions := api.Group("/questions")
		{
			questions.GET("/:id", questionHandler.GetQuestion)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
			questions.GET("/:id/select", questionHandler.SelectQuestion)
			questions.GET("/:id/answer", questionHandler.GetAnswer)
			questions.POST("/:id/resolve", questionHandler.ResolveQuestion)
		}

		teams := api.Group("/teams")
		{
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/points", teamHandler.AwardPoints)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
