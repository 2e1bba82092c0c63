package registry

import "pitchdeck/internal/deck/reference"

// Task types served by the worker manager.
const (
	TaskScoreDeck        = "score-deck"
	TaskDeriveDeck       = "derive-deck"
	TaskSaveDeck         = "save-deck"
	TaskDeleteDeck       = "delete-deck"
	TaskPromoteDraft     = "promote-draft"
	TaskPortfolioSummary = "portfolio-summary"
	TaskCloneTemplate    = "clone-template"
)

type object = map[string]interface{}

func stringProp() object { return object{"type": "string"} }

func section(fields ...string) object {
	props := object{}
	for _, f := range fields {
		props[f] = stringProp()
	}
	return object{"type": "object", "properties": props}
}

// deckShape accepts any string values; scoring and derivation fall back to
// defaults for unknown enums.
func deckShape() object {
	return object{
		"type": "object",
		"properties": object{
			"id":            stringProp(),
			"basics":        section("companyName", "oneLiner", "industry", "stage"),
			"narrative":     section("problem", "solution", "uniqueAdvantage"),
			"market":        section("targetCustomer", "marketSize", "competitors"),
			"businessModel": section("revenueModel", "pricing", "channels"),
			"traction":      section("teamSize", "revenue", "users", "fundingRaised", "fundingAsk"),
		},
	}
}

func enumOrEmpty(values []string) object {
	enum := make([]interface{}, 0, len(values)+1)
	enum = append(enum, "")
	for _, v := range values {
		enum = append(enum, v)
	}
	return object{"type": "string", "enum": enum}
}

// storedDeckShape is deckShape with the enumerated fields pinned to the
// reference tables, for decks about to be persisted.
func storedDeckShape() object {
	deck := deckShape()
	props := deck["properties"].(object)

	basics := section("companyName", "oneLiner")
	basics["properties"].(object)["industry"] = enumOrEmpty(reference.IndustryNames())
	basics["properties"].(object)["stage"] = enumOrEmpty(reference.Stages)
	props["basics"] = basics

	model := section("pricing", "channels")
	model["properties"].(object)["revenueModel"] = enumOrEmpty(reference.RevenueModels)
	props["businessModel"] = model
	return deck
}

// deckOrID requires either an inline deck or the id of a stored one.
func deckOrID() object {
	return object{
		"type": "object",
		"properties": object{
			"deckId": object{"type": "string", "minLength": 1},
			"deck":   deckShape(),
		},
		"anyOf": []interface{}{
			object{"required": []interface{}{"deck"}},
			object{"required": []interface{}{"deckId"}},
		},
	}
}

// Default is the built-in catalog.
func Default() *ActivityRegistry {
	return &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: "2024-06-01T00:00:00Z",
		Activities: []Activity{
			{
				ID:                   "deck.scoring.score",
				DisplayName:          "Score Deck",
				Description:          "Scores a deck against the eight-dimension investor rubric",
				Category:             "scoring",
				Version:              "1.0.0",
				TaskType:             TaskScoreDeck,
				ImplementationStatus: StatusCompleted,
				InputSchema:          deckOrID(),
				ErrorCodes:           []string{"DECK_VALIDATION_FAILED", "DECK_NOT_FOUND", "STORAGE_READ_FAILED"},
				Timeout:              "5s",
				Retries:              3,
				Tags:                 []string{"deck", "scoring"},
			},
			{
				ID:                   "deck.derive.build",
				DisplayName:          "Derive Deck View",
				Description:          "Computes market sizing, revenue projection, use of funds and competitor positions",
				Category:             "derivation",
				Version:              "1.0.0",
				TaskType:             TaskDeriveDeck,
				ImplementationStatus: StatusCompleted,
				InputSchema:          deckOrID(),
				ErrorCodes:           []string{"DECK_VALIDATION_FAILED", "DECK_NOT_FOUND", "STORAGE_READ_FAILED"},
				Timeout:              "5s",
				Retries:              3,
				Tags:                 []string{"deck", "derivation"},
			},
			{
				ID:                   "deck.repository.save",
				DisplayName:          "Save Deck",
				Description:          "Creates or replaces a deck by id",
				Category:             "repository",
				Version:              "1.0.0",
				TaskType:             TaskSaveDeck,
				ImplementationStatus: StatusCompleted,
				InputSchema: object{
					"type":       "object",
					"required":   []interface{}{"deck"},
					"properties": object{"deck": storedDeckShape()},
				},
				ErrorCodes: []string{"DECK_VALIDATION_FAILED", "STORAGE_READ_FAILED", "STORAGE_WRITE_FAILED"},
				Timeout:    "10s",
				Retries:    3,
				Tags:       []string{"deck", "repository"},
			},
			{
				ID:                   "deck.repository.delete",
				DisplayName:          "Delete Deck",
				Description:          "Removes a deck; deleting an unknown id succeeds",
				Category:             "repository",
				Version:              "1.0.0",
				TaskType:             TaskDeleteDeck,
				ImplementationStatus: StatusCompleted,
				InputSchema: object{
					"type":       "object",
					"required":   []interface{}{"deckId"},
					"properties": object{"deckId": object{"type": "string", "minLength": 1}},
				},
				ErrorCodes: []string{"DECK_VALIDATION_FAILED", "STORAGE_READ_FAILED", "STORAGE_WRITE_FAILED"},
				Timeout:    "10s",
				Retries:    3,
				Tags:       []string{"deck", "repository"},
			},
			{
				ID:                   "deck.draft.promote",
				DisplayName:          "Promote Draft",
				Description:          "Saves the wizard draft as a new deck and clears the draft slot",
				Category:             "repository",
				Version:              "1.0.0",
				TaskType:             TaskPromoteDraft,
				ImplementationStatus: StatusCompleted,
				InputSchema: object{
					"type": "object",
					"properties": object{
						"draft": deckShape(),
					},
				},
				ErrorCodes: []string{"DRAFT_NOT_FOUND", "STORAGE_READ_FAILED", "STORAGE_WRITE_FAILED"},
				Timeout:    "10s",
				Retries:    3,
				Tags:       []string{"deck", "draft"},
			},
			{
				ID:                   "deck.portfolio.summary",
				DisplayName:          "Portfolio Summary",
				Description:          "Scores every stored deck for the dashboard",
				Category:             "scoring",
				Version:              "1.0.0",
				TaskType:             TaskPortfolioSummary,
				ImplementationStatus: StatusCompleted,
				InputSchema:          object{"type": "object"},
				ErrorCodes:           []string{"STORAGE_READ_FAILED"},
				Timeout:              "10s",
				Retries:              3,
				Tags:                 []string{"deck", "dashboard"},
			},
			{
				ID:                   "template.catalog.clone",
				DisplayName:          "Clone Template",
				Description:          "Copies a catalog template into a new stored deck",
				Category:             "templates",
				Version:              "1.0.0",
				TaskType:             TaskCloneTemplate,
				ImplementationStatus: StatusCompleted,
				InputSchema: object{
					"type":     "object",
					"required": []interface{}{"templateId"},
					"properties": object{
						"templateId": object{"type": "string", "minLength": 1},
						"save":       object{"type": "boolean"},
					},
				},
				ErrorCodes: []string{"DECK_VALIDATION_FAILED", "TEMPLATE_NOT_FOUND", "STORAGE_READ_FAILED", "STORAGE_WRITE_FAILED"},
				Timeout:    "10s",
				Retries:    3,
				Tags:       []string{"template"},
			},
		},
	}
}
