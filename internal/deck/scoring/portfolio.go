package scoring

import (
	"math"
	"sort"

	"pitchdeck/internal/models"
)

// Portfolio scores every deck for the dashboard. Entries are newest first;
// BestGrade is the grade of the highest total, the earliest such deck on a
// tie.
func Portfolio(decks []models.Deck) models.PortfolioSummary {
	summary := models.PortfolioSummary{
		DeckCount: len(decks),
		Decks:     make([]models.PortfolioEntry, 0, len(decks)),
	}
	if len(decks) == 0 {
		return summary
	}

	sum, best := 0, -1
	for _, deck := range decks {
		report := Score(deck)
		sum += report.Total
		if report.Total > best {
			best = report.Total
			summary.BestGrade = report.Grade
		}
		summary.Decks = append(summary.Decks, models.PortfolioEntry{
			DeckID:      deck.ID,
			CompanyName: deck.Basics.CompanyName,
			Total:       report.Total,
			Grade:       report.Grade,
			UpdatedAt:   deck.UpdatedAt,
		})
	}
	summary.AverageScore = int(math.Round(float64(sum) / float64(len(decks))))

	sort.SliceStable(summary.Decks, func(i, j int) bool {
		return summary.Decks[i].UpdatedAt.After(summary.Decks[j].UpdatedAt)
	})
	return summary
}
