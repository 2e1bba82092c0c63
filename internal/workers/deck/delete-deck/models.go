// internal/workers/deck/delete-deck/models.go
package deletedeck

type Input struct {
	DeckID string `json:"deckId"`
}

// Output reports whether a deck was actually there to delete.
type Output struct {
	DeckID  string `json:"deckId"`
	Existed bool   `json:"existed"`
}
