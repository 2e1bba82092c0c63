package templates

import (
	"errors"
	"testing"
	"time"

	"pitchdeck/internal/deck/reference"
	"pitchdeck/internal/deck/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	list := List()
	require.Len(t, list, 6)
	assert.Equal(t, []string{"saas-b2b", "fintech-payments", "ai-ml", "marketplace", "climate-tech", "edtech"}, IDs())

	list[0].Deck.Basics.CompanyName = "mutated"
	again, ok := Get("saas-b2b")
	require.True(t, ok)
	assert.Equal(t, "CloudSync", again.Deck.Basics.CompanyName)
}

func TestCatalogIsWellFormed(t *testing.T) {
	for _, tmpl := range List() {
		t.Run(tmpl.ID, func(t *testing.T) {
			d := tmpl.Deck
			assert.Empty(t, d.ID, "templates carry no identity")
			assert.True(t, d.CreatedAt.IsZero())
			assert.True(t, reference.IsIndustry(d.Basics.Industry))
			assert.True(t, reference.IsStage(d.Basics.Stage))
			assert.True(t, reference.IsRevenueModel(d.BusinessModel.RevenueModel))

			report := scoring.Score(d)
			assert.GreaterOrEqual(t, report.Total, 80, "example decks should grade well")
		})
	}
}

func TestClone(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		id          string
		expectError bool
	}{
		{name: "known template", id: "climate-tech"},
		{name: "unknown template", id: "crypto-casino", expectError: true},
		{name: "empty id", id: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := Clone(tt.id, now)
			if tt.expectError {
				require.Error(t, err)
				var nf *NotFoundError
				assert.True(t, errors.As(err, &nf))
				assert.Equal(t, tt.id, nf.ID)
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(deck.ID)
			assert.NoError(t, parseErr)
			assert.Equal(t, now, deck.CreatedAt)
			assert.Equal(t, now, deck.UpdatedAt)
			assert.Equal(t, "CarbonLens", deck.Basics.CompanyName)
		})
	}
}

func TestClone_FreshIDs(t *testing.T) {
	a, err := Clone("edtech", time.Now())
	require.NoError(t, err)
	b, err := Clone("edtech", time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Basics, b.Basics)
}
