package handlers

import (
	"net/http"

	"quizboard/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req services.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.GetGame(gameID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.gameService.ListGames()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.gameService.DeleteGame(gameID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
}

func (h *GameHandler) StartGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.StartGame(gameID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

func (h *GameHandler) FinishGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.FinishGame(gameID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}
