package derivedeck

import (
	"context"
	"testing"

	"pitchdeck/internal/common/errors"
	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/deck/derive"
	"pitchdeck/internal/deck/repository"
	"pitchdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) (*Handler, *repository.Repository) {
	t.Helper()
	repo := repository.New(repository.NewMemoryStore(), logger.NewTestLogger(t))
	h, err := NewHandler(HandlerOptions{
		Decks:  repo,
		Logger: logger.NewTestLogger(t),
	})
	require.NoError(t, err)
	return h, repo
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(t *testing.T, repo *repository.Repository) *Input
		expectedError  bool
		expectedCode   errors.ErrorCode
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name: "empty inline deck uses every default",
			setup: func(t *testing.T, _ *repository.Repository) *Input {
				return &Input{Deck: &models.Deck{}}
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 100e9, output.View.Market.TAM)
				assert.Equal(t, "$100.0B", output.Formatted.TAM)
				assert.Equal(t, "$10.0B", output.Formatted.SAM)
				assert.Equal(t, "$100.0M", output.Formatted.SOM)
				assert.Equal(t, "$500K", output.Formatted.Ask)
				require.Len(t, output.View.Projection.Years, 5)
				assert.Equal(t, 10000.0, output.View.Projection.Years[0].Revenue)
				assert.Equal(t, derive.DefaultChannels, output.View.Channels)
			},
		},
		{
			name: "stored deck by id",
			setup: func(t *testing.T, repo *repository.Repository) *Input {
				saved, err := repo.SaveDeck(context.Background(), models.Deck{
					Basics:   models.Basics{CompanyName: "Ledgerly", Industry: "Fintech", Stage: "Seed"},
					Market:   models.Market{Competitors: "Stripe\nAdyen"},
					Traction: models.Traction{Revenue: "40000", FundingAsk: "2000000"},
				})
				require.NoError(t, err)
				return &Input{DeckID: saved.ID}
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.NotEmpty(t, output.DeckID)
				assert.Equal(t, "$310.0B", output.Formatted.TAM)
				assert.Equal(t, "$2.0M", output.Formatted.Ask)
				assert.Equal(t, 40000.0, output.View.Projection.Years[0].Revenue)
				require.Len(t, output.View.Competitors, 3)
				assert.True(t, output.View.Competitors[2].IsCompany)
				assert.Equal(t, "Ledgerly", output.View.Competitors[2].Name)
			},
		},
		{
			name: "unknown id",
			setup: func(t *testing.T, _ *repository.Repository) *Input {
				return &Input{DeckID: "nope"}
			},
			expectedError: true,
			expectedCode:  errors.ErrCodeDeckNotFound,
		},
		{
			name: "empty input",
			setup: func(t *testing.T, _ *repository.Repository) *Input {
				return &Input{}
			},
			expectedError: true,
			expectedCode:  errors.ErrCodeDeckValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := createTestHandler(t)
			output, err := h.Execute(context.Background(), tt.setup(t, repo))
			if tt.expectedError {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			tt.validateOutput(t, output)
		})
	}
}
