// Package templates is the read-only catalog of example decks founders can
// start from.
package templates

import (
	"fmt"
	"time"

	"pitchdeck/internal/models"

	"github.com/google/uuid"
)

type Template struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Deck        models.Deck `json:"deck"`
}

// NotFoundError is returned for an unknown template id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.ID)
}

// List returns copies of every template in catalog order.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

func Get(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Clone returns the template's deck under a fresh id, with both timestamps
// set to now.
func Clone(id string, now time.Time) (models.Deck, error) {
	t, ok := Get(id)
	if !ok {
		return models.Deck{}, &NotFoundError{ID: id}
	}
	deck := t.Deck
	deck.ID = uuid.NewString()
	deck.CreatedAt = now
	deck.UpdatedAt = now
	return deck, nil
}

func IDs() []string {
	ids := make([]string, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}
