package scoring

import (
	"pitchdeck/internal/deck/derive"
	"pitchdeck/internal/deck/reference"
	"pitchdeck/internal/models"
)

// Checklist is the eight-item investor readiness list. It checks presence
// rather than quality, so it can disagree with the rubric.
func Checklist(deck models.Deck) []models.ChecklistItem {
	b, n, m, bm, t := deck.Basics, deck.Narrative, deck.Market, deck.BusinessModel, deck.Traction

	return []models.ChecklistItem{
		{
			Label:   "Clear company identity & value prop",
			Checked: b.CompanyName != "" && length(b.OneLiner) > 10,
		},
		{
			Label:   "Well-defined problem with data",
			Checked: length(n.Problem) >= 50,
		},
		{
			Label:   "Compelling solution with unique advantage",
			Checked: length(n.Solution) >= 50 && n.UniqueAdvantage != "",
		},
		{
			Label:   "Market sizing & target customer defined",
			Checked: b.Industry != "" && m.TargetCustomer != "",
		},
		{
			Label:   "Business model & pricing strategy",
			Checked: bm.RevenueModel != "" && bm.Pricing != "",
		},
		{
			Label:   "Competitive landscape mapped",
			Checked: len(derive.CompetitorLines(deck)) >= 2,
		},
		{
			Label:   "Traction evidence (revenue or users)",
			Checked: reference.ParseAmount(t.Revenue) > 0 || reference.ParseAmount(t.Users) > 0,
		},
		{
			Label:   "Clear funding ask with use of funds",
			Checked: reference.ParseAmount(t.FundingAsk) > 0,
		},
	}
}

// ChecklistDone counts checked items.
func ChecklistDone(items []models.ChecklistItem) int {
	var done int
	for _, item := range items {
		if item.Checked {
			done++
		}
	}
	return done
}
