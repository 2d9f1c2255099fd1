package handlers

import (
	"net/http"

	"quizboard/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

func (h *TeamHandler) CreateTeam(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(gameID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(teamID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) ListTeamsByGame(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeamsByGame(gameID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(teamID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(teamID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

func (h *TeamHandler) AwardPoints(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.AwardPoints(teamID, req.Points)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) GetRanking(c *gin.Context) {
	gameID, ok := parseID(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.GetRanking(gameID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
