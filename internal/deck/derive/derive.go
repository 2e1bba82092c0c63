// Package derive computes the read-only artifacts shown on a deck's slides:
// market sizing, revenue projection, use of funds, competitor positions and
// go-to-market channels. Every function is a pure function of the deck.
package derive

import (
	"math"
	"strconv"
	"strings"

	"pitchdeck/internal/deck/reference"
	"pitchdeck/internal/models"

	"github.com/cespare/xxhash/v2"
)

const (
	SAMShare = 0.10
	SOMShare = 0.01

	ProjectionYears = 5
	// RevenuePerUser is the annual revenue assumed per user when no revenue
	// is reported ($10/month).
	RevenuePerUser = 120
	RevenueFloor   = 10_000

	DefaultAsk = 500_000

	MaxCompetitors = 4

	companyInnovation = 80
	companyReach      = 20
)

var fundsSplit = []models.FundsBucket{
	{Name: "Product", Percent: 0.40},
	{Name: "Sales & Marketing", Percent: 0.30},
	{Name: "Operations", Percent: 0.15},
	{Name: "Reserve", Percent: 0.15},
}

var DefaultChannels = []string{"Direct Sales", "Content Marketing", "Partnerships"}

func Market(deck models.Deck) models.MarketModel {
	tam := reference.TAMFor(deck.Basics.Industry)
	sam := tam * SAMShare
	return models.MarketModel{
		TAM: tam,
		SAM: sam,
		SOM: sam * SOMShare,
	}
}

// BaseRevenue picks reported revenue, then a users estimate, then the floor.
func BaseRevenue(deck models.Deck) float64 {
	if revenue := reference.ParseAmount(deck.Traction.Revenue); revenue > 0 {
		return revenue
	}
	if users := reference.ParseAmount(deck.Traction.Users); users > 0 {
		return users * RevenuePerUser
	}
	return RevenueFloor
}

func Projection(deck models.Deck) models.RevenueProjection {
	base := BaseRevenue(deck)
	growth := reference.GrowthRate(deck.Basics.Stage)

	years := make([]models.ProjectionYear, ProjectionYears)
	for i := range years {
		revenue := base
		if i > 0 {
			revenue = math.Round(base * math.Pow(growth, float64(i)))
		}
		years[i] = models.ProjectionYear{
			Year:    yearLabel(i + 1),
			Revenue: revenue,
		}
	}

	return models.RevenueProjection{
		BaseRevenue: base,
		GrowthRate:  growth,
		Years:       years,
	}
}

// UseOfFunds rounds each bucket on its own, so the buckets may not sum to
// the ask exactly.
func UseOfFunds(deck models.Deck) models.UseOfFunds {
	ask := reference.ParseAmount(deck.Traction.FundingAsk)
	if ask == 0 {
		ask = DefaultAsk
	}

	buckets := make([]models.FundsBucket, len(fundsSplit))
	for i, b := range fundsSplit {
		buckets[i] = models.FundsBucket{
			Name:    b.Name,
			Percent: b.Percent,
			Amount:  math.Round(ask * b.Percent),
		}
	}
	return models.UseOfFunds{Ask: ask, Buckets: buckets}
}

// CompetitorLines returns every trimmed, non-empty line of the competitor
// field.
func CompetitorLines(deck models.Deck) []string {
	return nonEmptyLines(deck.Market.Competitors)
}

// CompetitorNames is CompetitorLines capped at MaxCompetitors.
func CompetitorNames(deck models.Deck) []string {
	names := CompetitorLines(deck)
	if len(names) > MaxCompetitors {
		names = names[:MaxCompetitors]
	}
	return names
}

// CompetitivePositions places each competitor on the innovation/reach plane
// from a hash of its name, then appends the founder's company.
func CompetitivePositions(deck models.Deck) []models.CompetitorPosition {
	names := CompetitorNames(deck)
	positions := make([]models.CompetitorPosition, 0, len(names)+1)
	for _, name := range names {
		innovation, reach := placement(name)
		positions = append(positions, models.CompetitorPosition{
			Name:        name,
			Innovation:  innovation,
			MarketReach: reach,
		})
	}

	company := strings.TrimSpace(deck.Basics.CompanyName)
	if company == "" {
		company = "You"
	}
	positions = append(positions, models.CompetitorPosition{
		Name:        company,
		Innovation:  companyInnovation,
		MarketReach: companyReach,
		IsCompany:   true,
	})
	return positions
}

// Channels splits the comma-delimited distribution channels, falling back to
// DefaultChannels when none are given.
func Channels(deck models.Deck) []string {
	var channels []string
	for _, part := range strings.Split(deck.BusinessModel.Channels, ",") {
		if ch := strings.TrimSpace(part); ch != "" {
			channels = append(channels, ch)
		}
	}
	if len(channels) == 0 {
		return append([]string(nil), DefaultChannels...)
	}
	return channels
}

func Build(deck models.Deck) models.DeckView {
	return models.DeckView{
		Market:      Market(deck),
		Projection:  Projection(deck),
		UseOfFunds:  UseOfFunds(deck),
		Competitors: CompetitivePositions(deck),
		Channels:    Channels(deck),
	}
}

// placement maps a name into innovation [30,80) and reach [20,80).
func placement(name string) (float64, float64) {
	h := xxhash.Sum64String(name)
	lo := float64(uint32(h)) / (1 << 32)
	hi := float64(uint32(h>>32)) / (1 << 32)
	return 30 + lo*50, 20 + hi*60
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func yearLabel(n int) string {
	return "Year " + strconv.Itoa(n)
}
