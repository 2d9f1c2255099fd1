package services

import (
	nativeerrors "errors"

	"quizboard/errors"
	"quizboard/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GameService struct {
	db     *gorm.DB
	cache  *ViewCache
	logger *zap.Logger
}

func NewGameService(db *gorm.DB, cache *ViewCache, logger *zap.Logger) *GameService {
	return &GameService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

type CreateGameRequest struct {
	Title string `json:"title" binding:"required"`
}

func (s *GameService) CreateGame(req *CreateGameRequest) (*models.Game, error) {
	game := models.Game{
		Title:  req.Title,
		Status: models.StatusPreparing,
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, errors.NewInternalError("create game", err)
	}

	s.logger.Info("game created",
		zap.Uint("game_id", game.ID), zap.String("title", game.Title))
	return &game, nil
}

// GetGame composes the full read view of a game: its categories, each with
// its questions, and its teams. The composed view is served from the cache
// when present.
func (s *GameService) GetGame(gameID uint) (*models.Game, error) {
	if game := s.cache.GetGame(gameID); game != nil {
		return game, nil
	}

	var game models.Game
	err := s.db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.id")
		}).
		Preload("Categories.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("teams.id")
		}).
		First(&game, gameID).Error
	if err != nil {
		if nativeerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("get game", "game", gameID)
		}
		return nil, errors.NewInternalError("get game", err)
	}

	s.cache.StoreGame(&game)
	return &game, nil
}

func (s *GameService) ListGames() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Order("created_at DESC").Find(&games).Error; err != nil {
		return nil, errors.NewInternalError("list games", err)
	}
	return games, nil
}

// DeleteGame removes the game and everything it owns: questions of its
// categories, the categories and its teams, all in one transaction.
func (s *GameService) DeleteGame(gameID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game, err := findGame(tx, "delete game", gameID)
	if err != nil {
		tx.Rollback()
		return err
	}

	var categoryIDs []uint
	if err := tx.Model(&models.Category{}).Where("game_id = ?", game.ID).
		Pluck("id", &categoryIDs).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete game", err)
	}

	if len(categoryIDs) > 0 {
		if err := tx.Where("category_id IN ?", categoryIDs).Delete(&models.Question{}).Error; err != nil {
			tx.Rollback()
			return errors.NewInternalError("delete game", err)
		}
	}
	if err := tx.Where("game_id = ?", game.ID).Delete(&models.Category{}).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete game", err)
	}
	if err := tx.Where("game_id = ?", game.ID).Delete(&models.Team{}).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete game", err)
	}
	if err := tx.Delete(&models.Game{}, game.ID).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete game", err)
	}

	if err := tx.Commit().Error; err != nil {
		return errors.NewInternalError("delete game", err)
	}

	s.cache.Invalidate(game.ID)
	s.logger.Info("game deleted", zap.Uint("game_id", game.ID))
	return nil
}

// StartGame moves the game from PREPARING to STARTED. Any other current
// phase fails with an invalid-transition error and leaves the game
// unchanged. The transition check and the status write share one
// transaction.
func (s *GameService) StartGame(gameID uint) (*models.Game, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game, err := findGame(tx, "start game", gameID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if game.Status != models.StatusPreparing {
		tx.Rollback()
		return nil, errors.NewInvalidTransitionError("start", game.ID, string(game.Status))
	}

	if err := tx.Model(game).Update("status", models.StatusStarted).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("start game", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("start game", err)
	}

	s.cache.Invalidate(game.ID)
	s.logger.Info("game started", zap.Uint("game_id", game.ID))
	return game, nil
}

// FinishGame moves the game from STARTED to FINISHED. FINISHED is terminal,
// there is no transition out of it.
func (s *GameService) FinishGame(gameID uint) (*models.Game, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game, err := findGame(tx, "finish game", gameID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if game.Status != models.StatusStarted {
		tx.Rollback()
		return nil, errors.NewInvalidTransitionError("finish", game.ID, string(game.Status))
	}

	if err := tx.Model(game).Update("status", models.StatusFinished).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("finish game", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("finish game", err)
	}

	s.cache.Invalidate(game.ID)
	s.logger.Info("game finished", zap.Uint("game_id", game.ID))
	return game, nil
}
