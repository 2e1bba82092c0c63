package clonetemplate

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/deck/templates"
	"pitchdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeckWriter struct {
	mock.Mock
}

func (m *MockDeckWriter) SaveDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	args := m.Called(ctx, deck)
	if fn, ok := args.Get(0).(func(context.Context, models.Deck) models.Deck); ok {
		return fn(ctx, deck), args.Error(1)
	}
	return args.Get(0).(models.Deck), args.Error(1)
}

var fixedNow = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

func createTestHandler(t *testing.T, decks DeckWriter) *Handler {
	t.Helper()
	h, err := NewHandler(HandlerOptions{
		Decks:  decks,
		Logger: logger.NewTestLogger(t),
		Now:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return h
}

func boolPtr(b bool) *bool { return &b }

func TestHandler_Execute(t *testing.T) {
	firstID := templates.IDs()[0]
	tpl, _ := templates.Get(firstID)

	tests := []struct {
		name           string
		input          *Input
		setupMock      func(m *MockDeckWriter)
		expectedError  bool
		expectedCode   errors.ErrorCode
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "clone is saved by default",
			input: &Input{TemplateID: firstID},
			setupMock: func(m *MockDeckWriter) {
				m.On("SaveDeck", mock.Anything, mock.MatchedBy(func(d models.Deck) bool {
					return d.ID != "" && d.CreatedAt.Equal(fixedNow)
				})).Return(func(_ context.Context, d models.Deck) models.Deck { return d }, nil)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.True(t, output.Saved)
				assert.Equal(t, firstID, output.TemplateID)
				assert.Equal(t, output.Deck.ID, output.DeckID)
				assert.Equal(t, tpl.Deck.Basics, output.Deck.Basics)
				assert.Equal(t, fixedNow, output.Deck.UpdatedAt)
			},
		},
		{
			name:  "save false skips the repository",
			input: &Input{TemplateID: firstID, Save: boolPtr(false)},
			validateOutput: func(t *testing.T, output *Output) {
				assert.False(t, output.Saved)
				assert.NotEmpty(t, output.DeckID)
				assert.NotEqual(t, tpl.Deck.ID, output.DeckID)
			},
		},
		{
			name:          "unknown template",
			input:         &Input{TemplateID: "nope"},
			expectedError: true,
			expectedCode:  errors.ErrCodeTemplateNotFound,
		},
		{
			name:  "storage failure",
			input: &Input{TemplateID: firstID},
			setupMock: func(m *MockDeckWriter) {
				m.On("SaveDeck", mock.Anything, mock.Anything).
					Return(models.Deck{}, errors.NewStorageWriteFailedError("save", stderrors.New("disk full")))
			},
			expectedError: true,
			expectedCode:  errors.ErrCodeStorageWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decks := &MockDeckWriter{}
			if tt.setupMock != nil {
				tt.setupMock(decks)
			}
			h := createTestHandler(t, decks)

			output, err := h.Execute(context.Background(), tt.input)
			if tt.expectedError {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
			} else {
				require.NoError(t, err)
				tt.validateOutput(t, output)
			}
			decks.AssertExpectations(t)
		})
	}
}
