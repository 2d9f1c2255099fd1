package services

import (
	"quizboard/errors"
	"quizboard/models"

	"github.com/gobuffalo/nulls"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionService struct {
	db     *gorm.DB
	cache  *ViewCache
	teams  *TeamService
	logger *zap.Logger
}

func NewQuestionService(db *gorm.DB, cache *ViewCache, teams *TeamService, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		db:     db,
		cache:  cache,
		teams:  teams,
		logger: logger,
	}
}

type CreateQuestionRequest struct {
	Text   string `json:"text" binding:"required"`
	Answer string `json:"answer" binding:"required"`
	Points int    `json:"points" binding:"min=0"`
}

// UpdateQuestionRequest carries partial updates. Absent fields stay
// untouched; a present zero for points is applied verbatim.
type UpdateQuestionRequest struct {
	Text   nulls.String `json:"text"`
	Answer nulls.String `json:"answer"`
	Points nulls.Int    `json:"points"`
}

func (s *QuestionService) CreateQuestion(categoryID uint, req *CreateQuestionRequest) (*models.Question, error) {
	if req.Points < 0 {
		return nil, errors.NewBadRequestError("create question",
			"points must not be negative", errors.Details{"points": req.Points})
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	category, err := findCategory(tx, "create question", categoryID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	game, err := gameOfCategory(tx, "create question", category)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("create question", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}

	question := models.Question{
		CategoryID: category.ID,
		Text:       req.Text,
		Answer:     req.Answer,
		Points:     req.Points,
		Answered:   false,
	}
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("create question", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("create question", err)
	}

	s.cache.Invalidate(game.ID)
	return &question, nil
}

func (s *QuestionService) GetQuestion(questionID uint) (*models.Question, error) {
	return findQuestion(s.db, "get question", questionID)
}

func (s *QuestionService) ListQuestionsByCategory(categoryID uint) ([]models.Question, error) {
	if _, err := findCategory(s.db, "list questions", categoryID); err != nil {
		return nil, err
	}

	var questions []models.Question
	err := s.db.Where("category_id = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, errors.NewInternalError("list questions", err)
	}
	return questions, nil
}

func (s *QuestionService) UpdateQuestion(questionID uint, req *UpdateQuestionRequest) (*models.Question, error) {
	if req.Points.Valid && req.Points.Int < 0 {
		return nil, errors.NewBadRequestError("update question",
			"points must not be negative", errors.Details{"points": req.Points.Int})
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	question, err := findQuestion(tx, "update question", questionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	game, err := gameOfQuestion(tx, "update question", question)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("update question", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return nil, err
	}

	if req.Text.Valid {
		question.Text = req.Text.String
	}
	if req.Answer.Valid {
		question.Answer = req.Answer.String
	}
	if req.Points.Valid {
		question.Points = req.Points.Int
	}
	if err := tx.Save(question).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("update question", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("update question", err)
	}

	s.cache.Invalidate(game.ID)
	return question, nil
}

func (s *QuestionService) DeleteQuestion(questionID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	question, err := findQuestion(tx, "delete question", questionID)
	if err != nil {
		tx.Rollback()
		return err
	}
	game, err := gameOfQuestion(tx, "delete question", question)
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := assertPhase("delete question", game, models.StatusPreparing); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&models.Question{}, question.ID).Error; err != nil {
		tx.Rollback()
		return errors.NewInternalError("delete question", err)
	}
	if err := tx.Commit().Error; err != nil {
		return errors.NewInternalError("delete question", err)
	}

	s.cache.Invalidate(game.ID)
	return nil
}

// SelectQuestion returns the question for display on the board. Selecting an
// already answered question fails; selection itself is not tied to a game
// phase.
func (s *QuestionService) SelectQuestion(questionID uint) (*models.Question, error) {
	question, err := findQuestion(s.db, "select question", questionID)
	if err != nil {
		return nil, err
	}
	if question.Answered {
		return nil, errors.NewAlreadyAnsweredError("select question", question.ID)
	}
	return question, nil
}

// GetAnswer reveals the stored answer text. Pure read, no guards.
func (s *QuestionService) GetAnswer(questionID uint) (string, error) {
	question, err := findQuestion(s.db, "get answer", questionID)
	if err != nil {
		return "", err
	}
	return question.Answer, nil
}

// MarkAnswered flips the answered flag false to true. This is the single
// write path for the flag: the game must be STARTED and a repeated call is
// rejected, not silently accepted.
func (s *QuestionService) MarkAnswered(questionID uint) (*models.Question, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	question, err := findQuestion(tx, "mark answered", questionID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	game, err := gameOfQuestion(tx, "mark answered", question)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := assertPhase("mark answered", game, models.StatusStarted); err != nil {
		tx.Rollback()
		return nil, err
	}
	if question.Answered {
		tx.Rollback()
		return nil, errors.NewAlreadyAnsweredError("mark answered", question.ID)
	}

	if err := tx.Model(question).Update("answered", true).Error; err != nil {
		tx.Rollback()
		return nil, errors.NewInternalError("mark answered", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewInternalError("mark answered", err)
	}

	s.cache.Invalidate(game.ID)
	return question, nil
}

// Resolve marks the question answered and, if a team id is given, awards the
// question's points to that team. The two steps are separate transactions: a
// failed award leaves the question marked and is reported to the caller.
func (s *QuestionService) Resolve(questionID uint, teamID *uint) (*models.Question, error) {
	question, err := s.MarkAnswered(questionID)
	if err != nil {
		return nil, err
	}

	if teamID != nil {
		if _, err := s.teams.AwardPoints(*teamID, question.Points); err != nil {
			s.logger.Warn("question marked answered but award failed",
				zap.Uint("question_id", question.ID),
				zap.Uint("team_id", *teamID),
				zap.Error(err))
			return nil, err
		}
	}

	return question, nil
}
