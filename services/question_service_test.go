package services

import (
	"testing"

	"quizboard/errors"

	"github.com/gobuffalo/nulls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionStartsUnanswered(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")

	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)

	assert.Equal(t, "1492?", question.Text)
	assert.Equal(t, "Columbus", question.Answer)
	assert.Equal(t, 100, question.Points)
	assert.False(t, question.Answered)
}

// The service enforces the points invariant itself, it does not rely on the
// HTTP binding.
func TestCreateQuestionRejectsNegativePoints(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")

	_, err := env.questions.CreateQuestion(category.ID, &CreateQuestionRequest{
		Text:   "1492?",
		Answer: "Columbus",
		Points: -100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))

	questions, err := env.questions.ListQuestionsByCategory(category.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestCreateQuestionRequiresPreparing(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	env.mustStartGame(t, game.ID)

	_, err := env.questions.CreateQuestion(category.ID, &CreateQuestionRequest{
		Text:   "1492?",
		Answer: "Columbus",
		Points: 100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIllegalPhase))
}

func TestMarkAnsweredFlipsExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)

	// Not yet started.
	_, err := env.questions.MarkAnswered(question.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIllegalPhase))

	env.mustStartGame(t, game.ID)

	marked, err := env.questions.MarkAnswered(question.ID)
	require.NoError(t, err)
	assert.True(t, marked.Answered)

	// A repeated call is rejected, not silently accepted.
	_, err = env.questions.MarkAnswered(question.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyAnswered))
}

func TestSelectQuestion(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)

	// Selection is not tied to a phase, it works while still preparing.
	selected, err := env.questions.SelectQuestion(question.ID)
	require.NoError(t, err)
	assert.Equal(t, question.ID, selected.ID)

	env.mustStartGame(t, game.ID)
	_, err = env.questions.MarkAnswered(question.ID)
	require.NoError(t, err)

	_, err = env.questions.SelectQuestion(question.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyAnswered))
}

func TestGetAnswer(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)

	answer, err := env.questions.GetAnswer(question.ID)
	require.NoError(t, err)
	assert.Equal(t, "Columbus", answer)

	_, err = env.questions.GetAnswer(9999)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestResolveAwardsPoints(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)
	team := env.mustCreateTeam(t, game.ID, "Alpha")
	env.mustStartGame(t, game.ID)

	resolved, err := env.questions.Resolve(question.ID, &team.ID)
	require.NoError(t, err)
	assert.True(t, resolved.Answered)

	updated, err := env.teams.GetTeam(team.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Score)

	ranking, err := env.teams.GetRanking(game.ID)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, team.ID, ranking[0].ID)
}

func TestResolveWithoutTeam(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)
	env.mustStartGame(t, game.ID)

	resolved, err := env.questions.Resolve(question.ID, nil)
	require.NoError(t, err)
	assert.True(t, resolved.Answered)
}

func TestResolveTwiceDoesNotDoubleAward(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)
	team := env.mustCreateTeam(t, game.ID, "Alpha")
	env.mustStartGame(t, game.ID)

	_, err := env.questions.Resolve(question.ID, &team.ID)
	require.NoError(t, err)

	_, err = env.questions.Resolve(question.ID, &team.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyAnswered))

	updated, err := env.teams.GetTeam(team.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Score)
}

// A failed award reports the error but leaves the question marked. The mark
// and the award are separate transactions.
func TestResolveUnknownTeamLeavesQuestionMarked(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)
	env.mustStartGame(t, game.ID)

	unknownTeam := uint(9999)
	_, err := env.questions.Resolve(question.ID, &unknownTeam)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	current, err := env.questions.GetQuestion(question.ID)
	require.NoError(t, err)
	assert.True(t, current.Answered)
}

func TestUpdateQuestionPartialFields(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)

	updated, err := env.questions.UpdateQuestion(question.ID, &UpdateQuestionRequest{
		Points: nulls.NewInt(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "1492?", updated.Text)
	assert.Equal(t, "Columbus", updated.Answer)
	assert.Equal(t, 250, updated.Points)

	// A present zero is applied verbatim, absence means untouched.
	updated, err = env.questions.UpdateQuestion(question.ID, &UpdateQuestionRequest{
		Points: nulls.NewInt(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Points)

	_, err = env.questions.UpdateQuestion(question.ID, &UpdateQuestionRequest{
		Points: nulls.NewInt(-5),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))
}

func TestUpdateQuestionAfterStart(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)
	env.mustStartGame(t, game.ID)

	_, err := env.questions.UpdateQuestion(question.ID, &UpdateQuestionRequest{
		Text: nulls.NewString("1491?"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIllegalPhase))
}

func TestDeleteQuestionRequiresPreparing(t *testing.T) {
	env := newTestEnv(t)
	game := env.mustCreateGame(t, "Trivia Night")
	category := env.mustCreateCategory(t, game.ID, "History")
	question := env.mustCreateQuestion(t, category.ID, "1492?", "Columbus", 100)

	env.mustStartGame(t, game.ID)
	err := env.questions.DeleteQuestion(question.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIllegalPhase))

	_, err = env.questions.GetQuestion(question.ID)
	assert.NoError(t, err)
}
