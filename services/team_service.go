package services

import (
	"quizboard/errors"
	"quizboard/models"

	"github.com/gobuffalo/nulls"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TeamService struct {
	db     *gorm.DB
	cache  *ViewCache
	logger *zap.Logger
}

func NewTeamService(db *gorm.DB, cache *ViewCache, logger *zap.Logger) *TeamService {
	return &TeamService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateTeamRequest carries partial updates. Scores are never edited
// directly, a present score field is rejected.
type UpdateTeamRequest struct {
	Name  nulls.String `json:"name"`
	Score nulls.Int    `json:"score"`
}

type AwardPointsRequest struct {
	Points int `json:"points" binding:"required"`
}

func (s *TeamService) CreateTeam(gameID uint, req *CreateTeamRequest) (*models.Team, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game, err := findGame(tx, "create team", gameID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("create team", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}

	team := models.Team{
		GameID: game.ID,
		Name:   req.Name,
		Score:  0,
	}
	if err := tx.Create(&team).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("create team", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("create team", err)
	}

	s.cache.Invalidate(game.ID)
	return &team, nil
}

func (s *TeamService) GetTeam(teamID uint) (*models.Team, error) {
	return findTeam(s.db, "get team", teamID)
}

func (s *TeamService) ListTeamsByGame(gameID uint) ([]models.Team, error) {
	if _, err := findGame(s.db, "list teams", gameID); err != nil {
		return nil, err
	}

	var teams []models.Team
	if err := s.db.Where("game_id = ?", gameID).Order("id").Find(&teams).Error; err != nil {
		return nil, errors.NewInternalError("list teams", err)
	}
	return teams, nil
}

func (s *TeamService) UpdateTeam(teamID uint, req *UpdateTeamRequest) (*models.Team, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	team, err := findTeam(tx, "update team", teamID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	game, err := findGame(tx, "update team", team.GameID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("update team", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}

	if req.Score.Valid {
		tx.Rollback()
		return nil, errors.NewBadRequestError("update team",
			"scores cannot be edited directly, use the points endpoint",
			errors.Details{"teamId": team.ID})
	}

	if req.Name.Valid {
		team.Name = req.Name.String
	}
	if err := tx.Save(team).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("update team", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("update team", err)
	}

	s.cache.Invalidate(game.ID)
	return team, nil
}

func (s *TeamService) DeleteTeam(teamID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	team, err := findTeam(tx, "delete team", teamID)
	if err != nil {
		tx.Rollback()
		return err
	}
	game, err := findGame(tx, "delete team", team.GameID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := assertPhase("delete team", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&models.Team{}, team.ID).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete team", err)
	}
	if err := tx.Commit().Error; err != nil {
		return errors.NewInternalError("delete team", err)
	}

	s.cache.Invalidate(game.ID)
	return nil
}

// AwardPoints applies the given point delta to the team's score. The owning
// game must be STARTED; this is the only write path for scores. The phase
// check and the score write share one transaction.
func (s *TeamService) AwardPoints(teamID uint, points int) (*models.Team, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	team, err := findTeam(tx, "award points", teamID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	game, err := findGame(tx, "award points", team.GameID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("award points", game, models.StatusStarted); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Team{}).Where("id = ?", team.ID).
		Update("score", gorm.Expr("score + ?", points)).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("award points", err)
	}

	updated, err := findTeam(tx, "award points", team.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("award points", err)
	}

	s.cache.Invalidate(game.ID)
	s.logger.Info("points awarded",
		zap.Uint("team_id", team.ID),
		zap.Int("points", points),
		zap.Int("score", updated.Score))
	return updated, nil
}

// GetRanking returns the game's teams ordered by score descending. Ties keep
// insertion order (ascending id). Ranking is legal in any game phase.
func (s *TeamService) GetRanking(gameID uint) ([]models.Team, error) {
	if _, err := findGame(s.db, "get ranking", gameID); err != nil {
		return nil, err
	}

	var teams []models.Team
	err := s.db.Where("game_id = ?", gameID).
		Order("score DESC").Order("id").
		Find(&teams).Error
	if err != nil {
		return nil, errors.NewInternalError("get ranking", err)
	}
	return teams, nil
}
