package deletedeck

import (
	"context"
	stderrors "errors"
	"testing"

	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeckStore struct {
	mock.Mock
}

func (m *MockDeckStore) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deck), args.Error(1)
}

func (m *MockDeckStore) DeleteDeck(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		setupMock      func(m *MockDeckStore)
		expectedError  bool
		expectedCode   errors.ErrorCode
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "existing deck",
			input: &Input{DeckID: "d1"},
			setupMock: func(m *MockDeckStore) {
				m.On("GetDeck", mock.Anything, "d1").Return(&models.Deck{ID: "d1"}, nil)
				m.On("DeleteDeck", mock.Anything, "d1").Return(nil)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.True(t, output.Existed)
				assert.Equal(t, "d1", output.DeckID)
			},
		},
		{
			name:  "absent deck is still a success",
			input: &Input{DeckID: "gone"},
			setupMock: func(m *MockDeckStore) {
				m.On("GetDeck", mock.Anything, "gone").Return(nil, nil)
				m.On("DeleteDeck", mock.Anything, "gone").Return(nil)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.False(t, output.Existed)
			},
		},
		{
			name:  "write failure",
			input: &Input{DeckID: "d1"},
			setupMock: func(m *MockDeckStore) {
				m.On("GetDeck", mock.Anything, "d1").Return(&models.Deck{ID: "d1"}, nil)
				m.On("DeleteDeck", mock.Anything, "d1").
					Return(errors.NewStorageWriteFailedError("delete", stderrors.New("read-only file system")))
			},
			expectedError: true,
			expectedCode:  errors.ErrCodeStorageWriteFailed,
		},
		{
			name:          "missing id",
			input:         &Input{},
			expectedError: true,
			expectedCode:  errors.ErrCodeDeckValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockDeckStore{}
			if tt.setupMock != nil {
				tt.setupMock(store)
			}
			h, err := NewHandler(HandlerOptions{Decks: store, Logger: logger.NewTestLogger(t)})
			require.NoError(t, err)

			output, err := h.Execute(context.Background(), tt.input)
			if tt.expectedError {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
			} else {
				require.NoError(t, err)
				tt.validateOutput(t, output)
			}
			store.AssertExpectations(t)
		})
	}
}
