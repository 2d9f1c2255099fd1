package services

import (
	nativeerrors "errors"

	"quizboard/errors"
	"quizboard/models"

	"github.com/gobuffalo/nulls"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryService struct {
	db     *gorm.DB
	cache  *ViewCache
	logger *zap.Logger
}

func NewCategoryService(db *gorm.DB, cache *ViewCache, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest carries partial updates. Absent fields stay
// untouched.
type UpdateCategoryRequest struct {
	Name nulls.String `json:"name"`
}

func (s *CategoryService) CreateCategory(gameID uint, req *CreateCategoryRequest) (*models.Category, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game, err := findGame(tx, "create category", gameID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("create category", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}

	category := models.Category{
		GameID: game.ID,
		Name:   req.Name,
	}
	if err := tx.Create(&category).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("create category", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("create category", err)
	}

	s.cache.Invalidate(game.ID)
	return &category, nil
}

// GetCategory composes the read view of a category together with its
// questions.
func (s *CategoryService) GetCategory(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		First(&category, categoryID).Error
	if err != nil {
		if nativeerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("get category", "category", categoryID)
		}
		return nil, errors.NewInternalError("get category", err)
	}
	return &category, nil
}

func (s *CategoryService) ListCategoriesByGame(gameID uint) ([]models.Category, error) {
	if _, err := findGame(s.db, "list categories", gameID); err != nil {
		return nil, err
	}

	var categories []models.Category
	err := s.db.Where("game_id = ?", gameID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, errors.NewInternalError("list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(categoryID uint, req *UpdateCategoryRequest) (*models.Category, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	category, err := findCategory(tx, "update category", categoryID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	game, err := gameOfCategory(tx, "update category", category)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("update category", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}

	if req.Name.Valid {
		category.Name = req.Name.String
	}
	if err := tx.Save(category).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("update category", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("update category", err)
	}

	s.cache.Invalidate(game.ID)
	return category, nil
}

// DeleteCategory removes the category and the questions it owns in one
// transaction.
func (s *CategoryService) DeleteCategory(categoryID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	category, err := findCategory(tx, "delete category", categoryID)
	if err != nil {
		tx.Rollback()
		return err
	}
	game, err := gameOfCategory(tx, "delete category", category)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := assertPhase("delete category", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("category_id = ?", category.ID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete category", err)
	}
	if err := tx.Delete(&models.Category{}, category.ID).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete category", err)
	}
	if err := tx.Commit().Error; err != nil {
		return errors.NewInternalError("delete category", err)
	}

	s.cache.Invalidate(game.ID)
	s.logger.Info("category deleted",
		zap.Uint("category_id", category.ID), zap.Uint("game_id", game.ID))
	return nil
}
