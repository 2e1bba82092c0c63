// Package scoring grades a deck against a fixed eight-dimension rubric.
//
// Score is pure and deterministic: it reads only the deck's own fields. Text
// lengths are measured in runes. Numeric traction fields go through
// reference.ParseAmount, so malformed values score as absent.
package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"pitchdeck/internal/deck/derive"
	"pitchdeck/internal/deck/reference"
	"pitchdeck/internal/models"
)

const (
	DimensionCompanyIdentity = "Company Identity"
	DimensionProblem         = "Problem Definition"
	DimensionSolution        = "Solution Clarity"
	DimensionMarket          = "Market Opportunity"
	DimensionBusinessModel   = "Business Model"
	DimensionCompetition     = "Competitive Positioning"
	DimensionTraction        = "Traction & Team"
	DimensionAsk             = "The Ask"

	// MaxTotal is the sum of every dimension's maximum.
	MaxTotal = 100

	largeMarketTAM = 100e9
	minTypicalAsk  = 100_000
	maxTypicalAsk  = 10_000_000
)

const (
	SummaryInvestorReady = "Your deck is investor-ready. Strong across all dimensions with compelling content."
	SummaryGood          = "Good foundation. A few areas need strengthening before sharing with investors."
	SummaryDecent        = "Decent start. Several key areas need more detail and supporting data."
	SummaryEarly         = "Early stage deck. Focus on filling in the gaps, especially problem, solution, and traction."
)

// Grades lists every letter Score can assign, best first.
var Grades = []string{"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"}

var gradeFloors = []float64{0.90, 0.85, 0.80, 0.75, 0.70, 0.65, 0.60, 0.55, 0.50, 0.40}

var (
	scaleWords   = regexp.MustCompile(`(?i)million|billion`)
	percentValue = regexp.MustCompile(`\d+%`)
	dollarValue  = regexp.MustCompile(`\$\d[\d,]*`)
)

type dimension struct {
	name  string
	max   int
	score func(models.Deck) (int, []string)
}

var rubric = []dimension{
	{name: DimensionCompanyIdentity, max: 15, score: scoreIdentity},
	{name: DimensionProblem, max: 15, score: scoreProblem},
	{name: DimensionSolution, max: 15, score: scoreSolution},
	{name: DimensionMarket, max: 10, score: scoreMarket},
	{name: DimensionBusinessModel, max: 10, score: scoreBusinessModel},
	{name: DimensionCompetition, max: 10, score: scoreCompetition},
	{name: DimensionTraction, max: 15, score: scoreTraction},
	{name: DimensionAsk, max: 10, score: scoreAsk},
}

// Score evaluates every dimension and assembles the report. Every dimension
// is present even when it scores zero.
func Score(deck models.Deck) models.ScoreReport {
	report := models.ScoreReport{
		Dimensions: make([]models.ScoreDimension, 0, len(rubric)),
	}

	for _, d := range rubric {
		score, tips := d.score(deck)
		score = clamp(score, 0, d.max)
		if tips == nil {
			tips = []string{}
		}
		dim := models.ScoreDimension{
			Name:     d.name,
			Score:    score,
			MaxScore: d.max,
			Status:   Status(score, d.max),
			Tips:     tips,
		}
		report.Dimensions = append(report.Dimensions, dim)
		report.Total += score
		report.MaxTotal += d.max
		report.TipCount += len(tips)
		switch dim.Status {
		case models.StatusExcellent:
			report.Excellent++
		case models.StatusNeedsWork, models.StatusMissing:
			report.NeedsWork++
		}
	}

	ratio := report.Ratio()
	report.Grade = Grade(ratio)
	report.Summary = Summary(ratio)
	report.Checklist = Checklist(deck)
	return report
}

// Status classifies a dimension by its achieved/maximum ratio.
func Status(score, max int) models.DimensionStatus {
	if max <= 0 {
		return models.StatusMissing
	}
	ratio := float64(score) / float64(max)
	switch {
	case ratio >= 0.8:
		return models.StatusExcellent
	case ratio >= 0.6:
		return models.StatusGood
	case ratio >= 0.3:
		return models.StatusNeedsWork
	default:
		return models.StatusMissing
	}
}

func Grade(ratio float64) string {
	for i, floor := range gradeFloors {
		if ratio >= floor {
			return Grades[i]
		}
	}
	return Grades[len(Grades)-1]
}

func Summary(ratio float64) string {
	switch {
	case ratio >= 0.8:
		return SummaryInvestorReady
	case ratio >= 0.6:
		return SummaryGood
	case ratio >= 0.4:
		return SummaryDecent
	default:
		return SummaryEarly
	}
}

// GradeRank orders grades for comparison; lower is better. Unknown grades
// rank after F.
func GradeRank(grade string) int {
	for i, g := range Grades {
		if g == grade {
			return i
		}
	}
	return len(Grades)
}

func scoreIdentity(deck models.Deck) (int, []string) {
	var score int
	var tips []string
	b := deck.Basics

	if length(b.CompanyName) >= 2 {
		score += 5
	} else {
		tips = append(tips, "Add a clear company name")
	}

	if n := length(b.OneLiner); n >= 10 {
		score += 5
		if n > 80 {
			tips = append(tips, "Keep your one-liner under 80 characters for maximum impact")
		}
	} else {
		tips = append(tips, "Write a compelling one-liner that explains your value proposition in one sentence")
	}

	// Unknown enum values score like empty ones.
	if reference.IsIndustry(b.Industry) {
		score += 3
	} else {
		tips = append(tips, "Select your industry to get accurate market sizing")
	}

	if reference.IsStage(b.Stage) {
		score += 2
	} else {
		tips = append(tips, "Indicate your current stage")
	}
	return score, tips
}

func scoreProblem(deck models.Deck) (int, []string) {
	var score int
	var tips []string
	problem := deck.Narrative.Problem

	switch n := length(problem); {
	case n >= 50:
		score += 8
		if n >= 150 {
			score += 2
		}
	case n >= 20:
		score += 4
		tips = append(tips, "Expand your problem description. Investors need to feel the pain, so add specific examples, data, or affected user counts")
	default:
		tips = append(tips, "Describe the problem you're solving. Be specific: who has this problem? How much does it cost them?")
	}

	if HasQuantitativeSignal(problem) {
		score += 5
	} else {
		tips = append(tips, `Add quantitative data. "X million people" or "costs $Y billion annually" makes problems feel real`)
	}
	return score, tips
}

// HasQuantitativeSignal reports whether text cites a scale word, a
// percentage or a dollar amount.
func HasQuantitativeSignal(text string) bool {
	return scaleWords.MatchString(text) || percentValue.MatchString(text) || dollarValue.MatchString(text)
}

func scoreSolution(deck models.Deck) (int, []string) {
	var score int
	var tips []string
	solution := deck.Narrative.Solution
	advantage := deck.Narrative.UniqueAdvantage

	switch n := length(solution); {
	case n >= 50:
		score += 6
		if n >= 150 {
			score += 2
		}
	case n >= 20:
		score += 3
		tips = append(tips, "Elaborate on your solution. Explain HOW it works, not just WHAT it does")
	default:
		tips = append(tips, `Describe your solution clearly. Focus on the "how": what makes your approach work?`)
	}

	switch n := length(advantage); {
	case n >= 20:
		score += 5
	case n > 0:
		score += 2
		tips = append(tips, "Expand your unique advantage. What makes this 10x better than alternatives?")
	default:
		tips = append(tips, "Add a unique advantage. What moat do you have? IP? Network effects? Data? First-mover?")
	}

	// Plain substring match, so "email" also counts.
	lower := strings.ToLower(solution)
	if strings.Contains(lower, "ai") || strings.Contains(lower, "automat") || strings.Contains(lower, "platform") {
		score += 2
	}
	return score, tips
}

func scoreMarket(deck models.Deck) (int, []string) {
	var score int
	var tips []string

	if tam, ok := reference.LookupTAM(deck.Basics.Industry); ok {
		score += 4
		if tam >= largeMarketTAM {
			score += 2
		}
	} else {
		tips = append(tips, "Select an industry to auto-generate TAM/SAM/SOM analysis")
	}

	if length(deck.Market.TargetCustomer) >= 10 {
		score += 4
	} else {
		tips = append(tips, `Define your target customer precisely. "SMBs with 10-50 employees in healthcare" beats "businesses"`)
	}
	return score, tips
}

func scoreBusinessModel(deck models.Deck) (int, []string) {
	var score int
	var tips []string
	bm := deck.BusinessModel

	if reference.IsRevenueModel(bm.RevenueModel) {
		score += 4
	} else {
		tips = append(tips, "Select a revenue model. Investors need to know how you make money")
	}

	if length(bm.Pricing) >= 5 {
		score += 3
	} else {
		tips = append(tips, `Add specific pricing. "$49/mo per seat" is better than "subscription"`)
	}

	if length(bm.Channels) >= 5 {
		score += 3
	} else {
		tips = append(tips, "List your distribution channels. How do customers find you?")
	}
	return score, tips
}

func scoreCompetition(deck models.Deck) (int, []string) {
	var score int
	var tips []string

	switch n := len(derive.CompetitorLines(deck)); {
	case n >= 3:
		score += 6
	case n >= 1:
		score += 3
		tips = append(tips, `List at least 3 competitors. "No competition" is a red flag for investors`)
	default:
		tips = append(tips, "Add competitors. Every market has them, and showing awareness builds credibility")
	}

	if length(deck.Narrative.UniqueAdvantage) >= 20 {
		score += 4
	} else {
		tips = append(tips, "Clearly articulate why you win against competitors")
	}
	return score, tips
}

func scoreTraction(deck models.Deck) (int, []string) {
	var score int
	var tips []string
	t := deck.Traction
	revenue := reference.ParseAmount(t.Revenue)
	users := reference.ParseAmount(t.Users)
	team := reference.ParseAmount(t.TeamSize)

	switch {
	case revenue > 0:
		score += 5
		if revenue >= 10_000 {
			score += 2
		}
	case users > 0:
		score += 3
	default:
		tips = append(tips, "Any traction matters. Even 10 beta users or $100 in revenue shows validation")
	}

	if users > 0 {
		score += 2
	}

	switch {
	case team >= 2:
		score += 3
	case team >= 1:
		score += 1
		tips = append(tips, "Solo founders can succeed, but investors prefer teams. Highlight advisors or planned hires")
	default:
		tips = append(tips, "Add your team size. Even 1 is fine, just show commitment")
	}

	if reference.ParseAmount(t.FundingRaised) > 0 {
		score += 3
	}
	return score, tips
}

// scoreAsk uses the raw ask. The 500K placeholder in derive.UseOfFunds does
// not apply here.
func scoreAsk(deck models.Deck) (int, []string) {
	ask := reference.ParseAmount(deck.Traction.FundingAsk)
	if ask <= 0 {
		return 0, []string{"Specify your funding ask. Be specific about how much and what it's for"}
	}

	score := 5
	var tips []string
	if ask >= minTypicalAsk && ask <= maxTypicalAsk {
		score += 3
	} else {
		tips = append(tips, "Most seed rounds are $500K-$3M. Make sure your ask matches your stage")
	}
	if reference.ParseAmount(deck.Traction.Revenue) > 0 {
		score += 2
	}
	return score, tips
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
