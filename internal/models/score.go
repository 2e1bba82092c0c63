package models

import "time"

type DimensionStatus string

const (
	StatusExcellent DimensionStatus = "excellent"
	StatusGood      DimensionStatus = "good"
	StatusNeedsWork DimensionStatus = "needs-work"
	StatusMissing   DimensionStatus = "missing"
)

type ScoreDimension struct {
	Name     string          `json:"name"`
	Score    int             `json:"score"`
	MaxScore int             `json:"maxScore"`
	Status   DimensionStatus `json:"status"`
	Tips     []string        `json:"tips"`
}

type ChecklistItem struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

type ScoreReport struct {
	Total      int              `json:"total"`
	MaxTotal   int              `json:"maxTotal"`
	Grade      string           `json:"grade"`
	Summary    string           `json:"summary"`
	Dimensions []ScoreDimension `json:"dimensions"`
	Checklist  []ChecklistItem  `json:"checklist"`
	Excellent  int              `json:"excellentCount"`
	NeedsWork  int              `json:"needsWorkCount"`
	TipCount   int              `json:"tipCount"`
}

// Ratio is Total/MaxTotal, or zero for an empty report.
func (r ScoreReport) Ratio() float64 {
	if r.MaxTotal == 0 {
		return 0
	}
	return float64(r.Total) / float64(r.MaxTotal)
}

type PortfolioEntry struct {
	DeckID      string    `json:"deckId"`
	CompanyName string    `json:"companyName"`
	Total       int       `json:"total"`
	Grade       string    `json:"grade"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PortfolioSummary struct {
	DeckCount    int              `json:"deckCount"`
	AverageScore int              `json:"averageScore"`
	BestGrade    string           `json:"bestGrade"`
	Decks        []PortfolioEntry `json:"decks"`
}
