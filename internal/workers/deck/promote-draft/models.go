// internal/workers/deck/promote-draft/models.go
package promotedraft

import "pitchdeck/internal/models"

// Input may carry the wizard's final draft; it is saved over the slot before
// promotion. Without it the stored draft is promoted.
type Input struct {
	Draft *models.Draft `json:"draft,omitempty"`
}

type Output struct {
	DeckID string      `json:"deckId"`
	Deck   models.Deck `json:"deck"`
}
