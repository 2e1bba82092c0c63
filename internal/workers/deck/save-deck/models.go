// internal/workers/deck/save-deck/models.go
package savedeck

import "pitchdeck/internal/models"

type Input struct {
	Deck models.Deck `json:"deck"`
}

type Output struct {
	DeckID  string      `json:"deckId"`
	Created bool        `json:"created"`
	Deck    models.Deck `json:"deck"`
}
