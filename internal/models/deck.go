package models

import "time"

// Deck is one founder's pitch-deck project. Numeric traction fields are kept
// as the raw strings the founder typed; consumers parse them leniently.
type Deck struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Basics        Basics        `json:"basics"`
	Narrative     Narrative     `json:"narrative"`
	Market        Market        `json:"market"`
	BusinessModel BusinessModel `json:"businessModel"`
	Traction      Traction      `json:"traction"`
}

type Basics struct {
	CompanyName string `json:"companyName"`
	OneLiner    string `json:"oneLiner"`
	Industry    string `json:"industry"`
	Stage       string `json:"stage"`
}

type Narrative struct {
	Problem         string `json:"problem"`
	Solution        string `json:"solution"`
	UniqueAdvantage string `json:"uniqueAdvantage"`
}

type Market struct {
	TargetCustomer string `json:"targetCustomer"`
	// MarketSize is informational only and never feeds derivation.
	MarketSize  string `json:"marketSize"`
	Competitors string `json:"competitors"`
}

type BusinessModel struct {
	RevenueModel string `json:"revenueModel"`
	Pricing      string `json:"pricing"`
	Channels     string `json:"channels"`
}

type Traction struct {
	TeamSize      string `json:"teamSize"`
	Revenue       string `json:"revenue"`
	Users         string `json:"users"`
	FundingRaised string `json:"fundingRaised"`
	FundingAsk    string `json:"fundingAsk"`
}

// Draft is the single in-progress wizard record. Any section may be absent.
type Draft struct {
	Basics        *Basics        `json:"basics,omitempty"`
	Narrative     *Narrative     `json:"narrative,omitempty"`
	Market        *Market        `json:"market,omitempty"`
	BusinessModel *BusinessModel `json:"businessModel,omitempty"`
	Traction      *Traction      `json:"traction,omitempty"`
}

// ToDeck fills absent sections with empty values. Identity and timestamps are
// left zero for the repository to assign.
func (d Draft) ToDeck() Deck {
	var deck Deck
	if d.Basics != nil {
		deck.Basics = *d.Basics
	}
	if d.Narrative != nil {
		deck.Narrative = *d.Narrative
	}
	if d.Market != nil {
		deck.Market = *d.Market
	}
	if d.BusinessModel != nil {
		deck.BusinessModel = *d.BusinessModel
	}
	if d.Traction != nil {
		deck.Traction = *d.Traction
	}
	return deck
}

// DraftFromDeck captures every section of a deck as a draft.
func DraftFromDeck(deck Deck) Draft {
	return Draft{
		Basics:        &deck.Basics,
		Narrative:     &deck.Narrative,
		Market:        &deck.Market,
		BusinessModel: &deck.BusinessModel,
		Traction:      &deck.Traction,
	}
}
