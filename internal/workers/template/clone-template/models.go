// internal/workers/template/clone-template/models.go
package clonetemplate

import "pitchdeck/internal/models"

// Input names a catalog template. Save defaults to true; false returns the
// clone without persisting it.
type Input struct {
	TemplateID string `json:"templateId"`
	Save       *bool  `json:"save,omitempty"`
}

func (i *Input) shouldSave() bool {
	return i.Save == nil || *i.Save
}

type Output struct {
	TemplateID string      `json:"templateId"`
	DeckID     string      `json:"deckId"`
	Saved      bool        `json:"saved"`
	Deck       models.Deck `json:"deck"`
}
