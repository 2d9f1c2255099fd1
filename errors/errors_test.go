package errors

import (
	nativeerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode Code
		wantOK   bool
	}{
		{
			name:     "with rich error",
			err:      NewNotFoundError("get game", "game", 42),
			wantCode: ErrNotFound,
			wantOK:   true,
		},
		{
			name:     "with foreign error",
			err:      nativeerrors.New("i am an error"),
			wantCode: ErrInternal,
			wantOK:   false,
		},
		{
			name:     "with nil error",
			err:      nil,
			wantCode: ErrInternal,
			wantOK:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Cast(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, e.Code)
		})
	}
}

func TestIs(t *testing.T) {
	err := NewInvalidTransitionError("start", 7, "STARTED")
	assert.True(t, Is(err, ErrInvalidTransition))
	assert.False(t, Is(err, ErrNotFound))
	assert.False(t, Is(nativeerrors.New("plain"), ErrInvalidTransition))
}

func TestErrorDetailsCarryContext(t *testing.T) {
	err := NewIllegalPhaseError("create team", 3, "STARTED", "PREPARING")
	e, ok := Cast(err)
	assert.True(t, ok)
	assert.Equal(t, "create team", e.Details["operation"])
	assert.Equal(t, uint(3), e.Details["gameId"])
	assert.Equal(t, "STARTED", e.Details["status"])
}
