package services

import (
	"testing"

	"quizboard/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testEnv wires the services against an in-memory SQLite database and a
// miniredis-backed view cache.
type testEnv struct {
	db         *gorm.DB
	cache      *ViewCache
	games      *GameService
	categories *CategoryService
	questions  *QuestionService
	teams      *TeamService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Game{},
		&models.Category{},
		&models.Question{},
		&models.Team{},
	))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	logger := zap.NewNop()
	cache := NewViewCache(redisClient, logger)
	teams := NewTeamService(db, cache, logger)

	return &testEnv{
		db:         db,
		cache:      cache,
		games:      NewGameService(db, cache, logger),
		categories: NewCategoryService(db, cache, logger),
		questions:  NewQuestionService(db, cache, teams, logger),
		teams:      teams,
	}
}

// mustCreateGame creates a game in PREPARING.
func (env *testEnv) mustCreateGame(t *testing.T, title string) *models.Game {
	t.Helper()
	game, err := env.games.CreateGame(&CreateGameRequest{Title: title})
	require.NoError(t, err)
	return game
}

func (env *testEnv) mustCreateCategory(t *testing.T, gameID uint, name string) *models.Category {
	t.Helper()
	category, err := env.categories.CreateCategory(gameID, &CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return category
}

func (env *testEnv) mustCreateQuestion(t *testing.T, categoryID uint, text, answer string, points int) *models.Question {
	t.Helper()
	question, err := env.questions.CreateQuestion(categoryID, &CreateQuestionRequest{
		Text:   text,
		Answer: answer,
		Points: points,
	})
	require.NoError(t, err)
	return question
}

func (env *testEnv) mustCreateTeam(t *testing.T, gameID uint, name string) *models.Team {
	t.Helper()
	team, err := env.teams.CreateTeam(gameID, &CreateTeamRequest{Name: name})
	require.NoError(t, err)
	return team
}

func (env *testEnv) mustStartGame(t *testing.T, gameID uint) {
	t.Helper()
	_, err := env.games.StartGame(gameID)
	require.NoError(t, err)
}
