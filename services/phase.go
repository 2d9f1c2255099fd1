package services

import (
	nativeerrors "errors"

	"quizboard/errors"
	"quizboard/models"

	"gorm.io/gorm"
)

// assertPhase checks that the given game currently is in the wanted lifecycle
// phase. Callers must pass a freshly loaded game so that a concurrent
// transition is visible; never a cached one.
func assertPhase(operation string, game *models.Game, want models.GameStatus) error {
	if game.Status != want {
		return errors.NewIllegalPhaseError(operation, game.ID, string(game.Status), string(want))
	}
	return nil
}

func findGame(tx *gorm.DB, operation string, id uint) (*models.Game, error) {
	var game models.Game
	if err := tx.First(&game, id).Error; err != nil {
		if nativeerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(operation, "game", id)
		}
		return nil, errors.NewInternalError(operation, err)
	}
	return &game, nil
}

func findCategory(tx *gorm.DB, operation string, id uint) (*models.Category, error) {
	var category models.Category
	if err := tx.First(&category, id).Error; err != nil {
		if nativeerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(operation, "category", id)
		}
		return nil, errors.NewInternalError(operation, err)
	}
	return &category, nil
}

func findQuestion(tx *gorm.DB, operation string, id uint) (*models.Question, error) {
	var question models.Question
	if err := tx.First(&question, id).Error; err != nil {
		if nativeerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(operation, "question", id)
		}
		return nil, errors.NewInternalError(operation, err)
	}
	return &question, nil
}

func findTeam(tx *gorm.DB, operation string, id uint) (*models.Team, error) {
	var team models.Team
	if err := tx.First(&team, id).Error; err != nil {
		if nativeerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(operation, "team", id)
		}
		return nil, errors.NewInternalError(operation, err)
	}
	return &team, nil
}

// gameOfCategory loads the owning game of the given category.
func gameOfCategory(tx *gorm.DB, operation string, category *models.Category) (*models.Game, error) {
	return findGame(tx, operation, category.GameID)
}

// gameOfQuestion loads the owning game of the given question by walking the
// category back-reference.
func gameOfQuestion(tx *gorm.DB, operation string, question *models.Question) (*models.Game, error) {
	category, err := findCategory(tx, operation, question.CategoryID)
	if err != nil {
		return nil, err
	}
	return findGame(tx, operation, category.GameID)
}
