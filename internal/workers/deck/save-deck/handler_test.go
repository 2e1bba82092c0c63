package savedeck

import (
	"context"
	"sync"
	"testing"
	"time"

	"pitchdeck/internal/common/logger"
	"pitchdeck/internal/deck/repository"
	"pitchdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) (*Handler, *repository.Repository) {
	t.Helper()
	clock := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
	repo := repository.New(repository.NewMemoryStore(), logger.NewTestLogger(t),
		repository.WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}))
	h, err := NewHandler(HandlerOptions{Decks: repo, Logger: logger.NewTestLogger(t)})
	require.NoError(t, err)
	return h, repo
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(t *testing.T, repo *repository.Repository) *Input
		validateOutput func(t *testing.T, repo *repository.Repository, output *Output)
	}{
		{
			name: "new deck without id",
			setup: func(t *testing.T, _ *repository.Repository) *Input {
				return &Input{Deck: models.Deck{Basics: models.Basics{CompanyName: "Fresh"}}}
			},
			validateOutput: func(t *testing.T, repo *repository.Repository, output *Output) {
				assert.True(t, output.Created)
				assert.NotEmpty(t, output.DeckID)
				decks, err := repo.ListDecks(context.Background())
				require.NoError(t, err)
				assert.Len(t, decks, 1)
			},
		},
		{
			name: "new deck with caller id",
			setup: func(t *testing.T, _ *repository.Repository) *Input {
				return &Input{Deck: models.Deck{ID: "given", Basics: models.Basics{CompanyName: "Given"}}}
			},
			validateOutput: func(t *testing.T, _ *repository.Repository, output *Output) {
				assert.True(t, output.Created)
				assert.Equal(t, "given", output.DeckID)
			},
		},
		{
			name: "replace keeps createdAt",
			setup: func(t *testing.T, repo *repository.Repository) *Input {
				first, err := repo.SaveDeck(context.Background(), models.Deck{Basics: models.Basics{CompanyName: "Old"}})
				require.NoError(t, err)
				first.Basics.CompanyName = "New"
				return &Input{Deck: first}
			},
			validateOutput: func(t *testing.T, repo *repository.Repository, output *Output) {
				assert.False(t, output.Created)
				assert.Equal(t, "New", output.Deck.Basics.CompanyName)
				assert.True(t, output.Deck.UpdatedAt.After(output.Deck.CreatedAt))

				decks, err := repo.ListDecks(context.Background())
				require.NoError(t, err)
				require.Len(t, decks, 1)
				assert.Equal(t, "New", decks[0].Basics.CompanyName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := createTestHandler(t)
			output, err := h.Execute(context.Background(), tt.setup(t, repo))
			require.NoError(t, err)
			tt.validateOutput(t, repo, output)
		})
	}
}

func TestHandler_Execute_ConcurrentNewID(t *testing.T) {
	h, repo := createTestHandler(t)

	const jobs = 6
	var wg sync.WaitGroup
	outputs := make([]*Output, jobs)
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := h.Execute(context.Background(), &Input{Deck: models.Deck{ID: "retried", Basics: models.Basics{CompanyName: "Retry"}}})
			assert.NoError(t, err)
			outputs[i] = out
		}(i)
	}
	wg.Wait()

	created := 0
	for _, out := range outputs {
		if out != nil && out.Created {
			created++
		}
	}
	assert.Equal(t, 1, created)

	decks, err := repo.ListDecks(context.Background())
	require.NoError(t, err)
	assert.Len(t, decks, 1)
}
