// internal/workers/deck/score-deck/models.go
package scoredeck

import "pitchdeck/internal/models"

// Input names a stored deck or carries one inline. An inline deck wins.
type Input struct {
	DeckID string       `json:"deckId,omitempty"`
	Deck   *models.Deck `json:"deck,omitempty"`
}

// Output flattens total and grade next to the full report so gateways can
// branch on them.
type Output struct {
	DeckID      string             `json:"deckId,omitempty"`
	Total       int                `json:"total"`
	Grade       string             `json:"grade"`
	ScoreReport models.ScoreReport `json:"scoreReport"`
}
