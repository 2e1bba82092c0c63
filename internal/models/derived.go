package models

// MarketModel is the TAM/SAM/SOM breakdown for a deck's industry.
type MarketModel struct {
	TAM float64 `json:"tam"`
	SAM float64 `json:"sam"`
	SOM float64 `json:"som"`
}

type ProjectionYear struct {
	Year    string  `json:"year"`
	Revenue float64 `json:"revenue"`
}

type RevenueProjection struct {
	BaseRevenue float64          `json:"baseRevenue"`
	GrowthRate  float64          `json:"growthRate"`
	Years       []ProjectionYear `json:"years"`
}

type FundsBucket struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type UseOfFunds struct {
	Ask     float64       `json:"ask"`
	Buckets []FundsBucket `json:"buckets"`
}

type CompetitorPosition struct {
	Name        string  `json:"name"`
	Innovation  float64 `json:"innovation"`
	MarketReach float64 `json:"marketReach"`
	IsCompany   bool    `json:"isCompany"`
}

// DeckView bundles every derived artifact a renderer needs for one deck.
type DeckView struct {
	Market      MarketModel          `json:"market"`
	Projection  RevenueProjection    `json:"projection"`
	UseOfFunds  UseOfFunds           `json:"useOfFunds"`
	Competitors []CompetitorPosition `json:"competitors"`
	Channels    []string             `json:"channels"`
}
