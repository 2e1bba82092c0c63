// internal/workers/deck/derive-deck/models.go
package derivedeck

import "pitchdeck/internal/models"

type Input struct {
	DeckID string       `json:"deckId,omitempty"`
	Deck   *models.Deck `json:"deck,omitempty"`
}

// Output carries the derived view plus display strings for the market tiers.
type Output struct {
	DeckID    string          `json:"deckId,omitempty"`
	View      models.DeckView `json:"view"`
	Formatted Formatted       `json:"formatted"`
}

type Formatted struct {
	TAM string `json:"tam"`
	SAM string `json:"sam"`
	SOM string `json:"som"`
	Ask string `json:"ask"`
}
