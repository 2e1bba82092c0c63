package scoring

import (
	"strings"
	"testing"

	"pitchdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textOf pads seed with filler to exactly n runes.
func textOf(seed string, n int) string {
	if len(seed) >= n {
		return seed[:n]
	}
	return seed + strings.Repeat("x", n-len(seed))
}

func createTestDeck() models.Deck {
	return models.Deck{
		ID: "deck-123",
		Basics: models.Basics{
			CompanyName: "Acme",
			OneLiner:    "We help teams ship faster",
			Industry:    "SaaS",
			Stage:       "Seed",
		},
		Narrative: models.Narrative{
			Problem:         textOf("Engineering teams lose $50 million a year to slow releases. ", 160),
			Solution:        textOf("A release platform that wires CI, review and deploys together. ", 160),
			UniqueAdvantage: textOf("Deep integrations nobody else ", 30),
		},
		Market: models.Market{
			TargetCustomer: textOf("Engineering managers at 50-500 person co", 40),
			Competitors:    "GitHub Actions\nCircleCI\nHarness",
		},
		BusinessModel: models.BusinessModel{
			RevenueModel: "Subscription",
			Pricing:      "$29/mo",
			Channels:     "Direct sales, SEO",
		},
		Traction: models.Traction{
			TeamSize:      "4",
			Revenue:       "50000",
			Users:         "1000",
			FundingRaised: "100000",
			FundingAsk:    "2000000",
		},
	}
}

func dimensionScore(t *testing.T, report models.ScoreReport, name string) models.ScoreDimension {
	t.Helper()
	for _, d := range report.Dimensions {
		if d.Name == name {
			return d
		}
	}
	require.Failf(t, "dimension not found", "%s", name)
	return models.ScoreDimension{}
}

func TestScore_EndToEnd(t *testing.T) {
	report := Score(createTestDeck())

	expected := map[string]int{
		DimensionCompanyIdentity: 15,
		DimensionProblem:         15,
		DimensionSolution:        15,
		DimensionMarket:          10,
		DimensionBusinessModel:   10,
		DimensionCompetition:     10,
		DimensionAsk:             10,
	}
	for name, score := range expected {
		assert.Equal(t, score, dimensionScore(t, report, name).Score, name)
	}
	assert.GreaterOrEqual(t, dimensionScore(t, report, DimensionTraction).Score, 13)

	assert.GreaterOrEqual(t, report.Total, 93)
	assert.Equal(t, MaxTotal, report.MaxTotal)
	assert.LessOrEqual(t, GradeRank(report.Grade), GradeRank("A-"))
	assert.Equal(t, SummaryInvestorReady, report.Summary)
	assert.Equal(t, 8, report.Excellent)
	assert.Zero(t, report.NeedsWork)
	assert.Equal(t, 8, ChecklistDone(report.Checklist))
}

func TestScore_EmptyDeck(t *testing.T) {
	report := Score(models.Deck{})

	require.Len(t, report.Dimensions, 8)
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 100, report.MaxTotal)
	assert.Equal(t, "F", report.Grade)
	assert.Equal(t, SummaryEarly, report.Summary)
	assert.Equal(t, 8, report.NeedsWork)
	assert.Zero(t, ChecklistDone(report.Checklist))
	for _, d := range report.Dimensions {
		assert.Equal(t, models.StatusMissing, d.Status, d.Name)
		assert.NotEmpty(t, d.Tips, d.Name)
	}
	assert.Equal(t, []string{
		DimensionCompanyIdentity, DimensionProblem, DimensionSolution, DimensionMarket,
		DimensionBusinessModel, DimensionCompetition, DimensionTraction, DimensionAsk,
	}, dimensionNames(report))
}

func dimensionNames(r models.ScoreReport) []string {
	names := make([]string, len(r.Dimensions))
	for i, d := range r.Dimensions {
		names[i] = d.Name
	}
	return names
}

func TestScore_Deterministic(t *testing.T) {
	deck := createTestDeck()
	deck.Traction.Revenue = "garbage"
	assert.Equal(t, Score(deck), Score(deck))
}

func TestScore_Bounds(t *testing.T) {
	decks := []models.Deck{
		{},
		createTestDeck(),
		{Traction: models.Traction{Revenue: "-1", Users: "NaN", TeamSize: "1e9", FundingAsk: "abc"}},
		{Basics: models.Basics{OneLiner: strings.Repeat("long ", 40)}},
		{Narrative: models.Narrative{Problem: "99% of everyone", Solution: "ai", UniqueAdvantage: "x"}},
	}

	for _, deck := range decks {
		report := Score(deck)
		assert.GreaterOrEqual(t, report.Total, 0)
		assert.LessOrEqual(t, report.Total, 100)
		assert.Contains(t, Grades, report.Grade)
		for _, d := range report.Dimensions {
			assert.GreaterOrEqual(t, d.Score, 0, d.Name)
			assert.LessOrEqual(t, d.Score, d.MaxScore, d.Name)
		}
	}
}

func TestScore_ProblemMonotonic(t *testing.T) {
	short := models.Deck{Narrative: models.Narrative{Problem: textOf("$5 ", 10)}}
	long := models.Deck{Narrative: models.Narrative{Problem: textOf("$5 ", 60)}}

	before := dimensionScore(t, Score(short), DimensionProblem).Score
	after := dimensionScore(t, Score(long), DimensionProblem).Score
	assert.Equal(t, 5, before)
	assert.Equal(t, 13, after)
	assert.Greater(t, after, before)
}

func TestScoreIdentity(t *testing.T) {
	tests := []struct {
		name          string
		basics        models.Basics
		expectedScore int
		expectedTips  int
	}{
		{name: "complete", basics: models.Basics{CompanyName: "Acme", OneLiner: "Ship faster now", Industry: "SaaS", Stage: "Seed"}, expectedScore: 15, expectedTips: 0},
		{name: "one letter name", basics: models.Basics{CompanyName: "A", OneLiner: "Ship faster now", Industry: "SaaS", Stage: "Seed"}, expectedScore: 10, expectedTips: 1},
		{name: "long one-liner still scores", basics: models.Basics{CompanyName: "Acme", OneLiner: strings.Repeat("a", 81), Industry: "SaaS", Stage: "Seed"}, expectedScore: 15, expectedTips: 1},
		{name: "unknown industry scores as empty", basics: models.Basics{CompanyName: "Acme", OneLiner: "Ship faster now", Industry: "Space Mining", Stage: "Seed"}, expectedScore: 12, expectedTips: 1},
		{name: "unknown stage scores as empty", basics: models.Basics{CompanyName: "Acme", OneLiner: "Ship faster now", Industry: "SaaS", Stage: "Series F"}, expectedScore: 13, expectedTips: 1},
		{name: "stage is case sensitive", basics: models.Basics{CompanyName: "Acme", OneLiner: "Ship faster now", Industry: "SaaS", Stage: "seed"}, expectedScore: 13, expectedTips: 1},
		{name: "empty", basics: models.Basics{}, expectedScore: 0, expectedTips: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tips := scoreIdentity(models.Deck{Basics: tt.basics})
			assert.Equal(t, tt.expectedScore, score)
			assert.Len(t, tips, tt.expectedTips)
		})
	}
}

func TestScoreProblem(t *testing.T) {
	tests := []struct {
		name          string
		problem       string
		expectedScore int
	}{
		{name: "short without data", problem: "slow", expectedScore: 0},
		{name: "mid length without data", problem: textOf("teams are slow ", 30), expectedScore: 4},
		{name: "mid length with percent", problem: textOf("40% of teams ", 30), expectedScore: 9},
		{name: "long with billion", problem: textOf("costs a Billion ", 60), expectedScore: 13},
		{name: "very long with dollars", problem: textOf("$1,200 per seat ", 150), expectedScore: 15},
		{name: "bare dollar sign is not data", problem: textOf("$ lots ", 60), expectedScore: 8},
		{name: "dollar sign with only commas is not data", problem: textOf("$, lots ", 60), expectedScore: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreProblem(models.Deck{Narrative: models.Narrative{Problem: tt.problem}})
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestScoreSolution(t *testing.T) {
	tests := []struct {
		name          string
		narrative     models.Narrative
		expectedScore int
	}{
		{name: "empty", narrative: models.Narrative{}, expectedScore: 0},
		{name: "keyword alone", narrative: models.Narrative{Solution: "Automation"}, expectedScore: 2},
		{name: "substring keyword", narrative: models.Narrative{Solution: textOf("We send email ", 20)}, expectedScore: 5},
		{name: "short advantage", narrative: models.Narrative{Solution: textOf("zzz ", 50), UniqueAdvantage: "fast"}, expectedScore: 8},
		{name: "full", narrative: models.Narrative{Solution: textOf("platform ", 150), UniqueAdvantage: textOf("moat ", 20)}, expectedScore: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreSolution(models.Deck{Narrative: tt.narrative})
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestScoreMarket(t *testing.T) {
	score, tips := scoreMarket(models.Deck{Basics: models.Basics{Industry: "Real Estate Tech"}})
	assert.Equal(t, 4, score)
	assert.Len(t, tips, 1)

	score, tips = scoreMarket(models.Deck{Basics: models.Basics{Industry: "Unknown"}, Market: models.Market{TargetCustomer: "Dentists in Ohio"}})
	assert.Equal(t, 4, score)
	assert.Len(t, tips, 1)

	score, tips = scoreMarket(models.Deck{Basics: models.Basics{Industry: "Fintech"}, Market: models.Market{TargetCustomer: "Dentists in Ohio"}})
	assert.Equal(t, 10, score)
	assert.Empty(t, tips)
}

func TestScoreCompetition(t *testing.T) {
	tests := []struct {
		name          string
		competitors   string
		expectedScore int
	}{
		{name: "none", competitors: "", expectedScore: 0},
		{name: "blank lines only", competitors: "\n  \n", expectedScore: 0},
		{name: "two", competitors: "A\nB", expectedScore: 3},
		{name: "three with blanks", competitors: "A\n\nB\n C ", expectedScore: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreCompetition(models.Deck{Market: models.Market{Competitors: tt.competitors}})
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestScoreTraction(t *testing.T) {
	tests := []struct {
		name          string
		traction      models.Traction
		expectedScore int
	}{
		{name: "nothing", traction: models.Traction{}, expectedScore: 0},
		{name: "small revenue", traction: models.Traction{Revenue: "500"}, expectedScore: 5},
		{name: "users only", traction: models.Traction{Users: "10"}, expectedScore: 5},
		{name: "solo founder", traction: models.Traction{TeamSize: "1"}, expectedScore: 1},
		{name: "everything", traction: models.Traction{Revenue: "10000", Users: "5", TeamSize: "2", FundingRaised: "1"}, expectedScore: 15},
		{name: "malformed values", traction: models.Traction{Revenue: "n/a", Users: "-3", TeamSize: "two", FundingRaised: "?"}, expectedScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreTraction(models.Deck{Traction: tt.traction})
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestScoreAsk(t *testing.T) {
	tests := []struct {
		name          string
		traction      models.Traction
		expectedScore int
		expectedTips  int
	}{
		{name: "missing ask", traction: models.Traction{Revenue: "1000"}, expectedScore: 0, expectedTips: 1},
		{name: "too low", traction: models.Traction{FundingAsk: "50000"}, expectedScore: 5, expectedTips: 1},
		{name: "too high", traction: models.Traction{FundingAsk: "20000000"}, expectedScore: 5, expectedTips: 1},
		{name: "in range", traction: models.Traction{FundingAsk: "100000"}, expectedScore: 8, expectedTips: 0},
		{name: "upper bound with revenue", traction: models.Traction{FundingAsk: "10000000", Revenue: "1"}, expectedScore: 10, expectedTips: 0},
		{name: "zero revenue string gets no bonus", traction: models.Traction{FundingAsk: "1000000", Revenue: "0"}, expectedScore: 8, expectedTips: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tips := scoreAsk(models.Deck{Traction: tt.traction})
			assert.Equal(t, tt.expectedScore, score)
			assert.Len(t, tips, tt.expectedTips)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, models.StatusExcellent, Status(12, 15))
	assert.Equal(t, models.StatusGood, Status(9, 15))
	assert.Equal(t, models.StatusNeedsWork, Status(3, 10))
	assert.Equal(t, models.StatusMissing, Status(2, 10))
	assert.Equal(t, models.StatusMissing, Status(0, 0))
}

func TestGrade(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{1.0, "A+"}, {0.90, "A+"}, {0.89, "A"}, {0.85, "A"}, {0.80, "A-"},
		{0.75, "B+"}, {0.70, "B"}, {0.65, "B-"}, {0.60, "C+"}, {0.55, "C"},
		{0.50, "C-"}, {0.40, "D"}, {0.39, "F"}, {0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Grade(tt.ratio), "ratio %v", tt.ratio)
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, SummaryInvestorReady, Summary(0.8))
	assert.Equal(t, SummaryGood, Summary(0.6))
	assert.Equal(t, SummaryDecent, Summary(0.4))
	assert.Equal(t, SummaryEarly, Summary(0.39))
}

func TestChecklist(t *testing.T) {
	deck := models.Deck{
		Basics:    models.Basics{CompanyName: "Acme", OneLiner: "exactly10!"},
		Narrative: models.Narrative{Problem: textOf("p", 50), Solution: textOf("s", 50)},
		Market:    models.Market{Competitors: "A\nB"},
		Traction:  models.Traction{Users: "3"},
	}

	items := Checklist(deck)
	require.Len(t, items, 8)
	assert.False(t, items[0].Checked, "one-liner must be longer than 10")
	assert.True(t, items[1].Checked)
	assert.False(t, items[2].Checked, "advantage missing")
	assert.False(t, items[3].Checked)
	assert.False(t, items[4].Checked)
	assert.True(t, items[5].Checked)
	assert.True(t, items[6].Checked)
	assert.False(t, items[7].Checked)
	assert.Equal(t, 3, ChecklistDone(items))
}

func TestGradeRank(t *testing.T) {
	assert.Less(t, GradeRank("A+"), GradeRank("A-"))
	assert.Less(t, GradeRank("D"), GradeRank("F"))
	assert.Equal(t, len(Grades), GradeRank("Z"))
}

func TestScoreBusinessModel(t *testing.T) {
	tests := []struct {
		name          string
		model         models.BusinessModel
		expectedScore int
		expectedTips  int
	}{
		{name: "complete", model: models.BusinessModel{RevenueModel: "Subscription", Pricing: "$29/mo", Channels: "Direct sales"}, expectedScore: 10, expectedTips: 0},
		{name: "unknown revenue model scores as empty", model: models.BusinessModel{RevenueModel: "Donations", Pricing: "$29/mo", Channels: "Direct sales"}, expectedScore: 6, expectedTips: 1},
		{name: "empty", model: models.BusinessModel{}, expectedScore: 0, expectedTips: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tips := scoreBusinessModel(models.Deck{BusinessModel: tt.model})
			assert.Equal(t, tt.expectedScore, score)
			assert.Len(t, tips, tt.expectedTips)
		})
	}
}

func TestScore_UnknownEnumsMatchEmptyDeck(t *testing.T) {
	unknown := models.Deck{
		Basics:        models.Basics{Industry: "Space Mining", Stage: "Series F"},
		BusinessModel: models.BusinessModel{RevenueModel: "Donations"},
	}

	got := Score(unknown)
	empty := Score(models.Deck{})
	assert.Equal(t, empty.Total, got.Total)
	assert.Equal(t, 0, got.Total)
	for i := range got.Dimensions {
		assert.Equal(t, empty.Dimensions[i].Tips, got.Dimensions[i].Tips, got.Dimensions[i].Name)
	}
}
