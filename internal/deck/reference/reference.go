// Package reference holds the static lookup tables behind derivation and
// scoring: industry market sizes, funding stages with their growth rates, and
// revenue models.
package reference

const (
	// DefaultTAM applies when the industry is unset or not in the table.
	DefaultTAM = 100_000_000_000

	// DefaultGrowthRate applies when the stage is unset or unknown.
	DefaultGrowthRate = 2.0
)

type Industry struct {
	Name string
	TAM  float64
}

// Industries is ordered the way a picker should list them.
var Industries = []Industry{
	{Name: "SaaS", TAM: 195_000_000_000},
	{Name: "Fintech", TAM: 310_000_000_000},
	{Name: "Healthcare", TAM: 500_000_000_000},
	{Name: "E-commerce", TAM: 6_300_000_000_000},
	{Name: "EdTech", TAM: 400_000_000_000},
	{Name: "AI / ML", TAM: 200_000_000_000},
	{Name: "Cybersecurity", TAM: 180_000_000_000},
	{Name: "Climate Tech", TAM: 130_000_000_000},
	{Name: "Real Estate Tech", TAM: 90_000_000_000},
	{Name: "Gaming", TAM: 220_000_000_000},
	{Name: "Social Media", TAM: 150_000_000_000},
	{Name: "Logistics", TAM: 120_000_000_000},
	{Name: "Food & Beverage", TAM: 300_000_000_000},
	{Name: "Other", TAM: 100_000_000_000},
}

const (
	StagePreSeed = "Pre-seed"
	StageSeed    = "Seed"
	StageSeriesA = "Series A"
	StageGrowth  = "Growth"
)

var Stages = []string{StagePreSeed, StageSeed, StageSeriesA, StageGrowth}

var RevenueModels = []string{
	"Subscription",
	"Marketplace / Commission",
	"Freemium",
	"Transaction Fee",
	"Advertising",
	"Licensing",
	"Usage-based",
	"One-time Purchase",
}

var industryTAM = func() map[string]float64 {
	m := make(map[string]float64, len(Industries))
	for _, ind := range Industries {
		m[ind.Name] = ind.TAM
	}
	return m
}()

// LookupTAM reports the table TAM for an industry and whether it was found.
func LookupTAM(industry string) (float64, bool) {
	tam, ok := industryTAM[industry]
	return tam, ok
}

// TAMFor never fails: unknown industries get DefaultTAM.
func TAMFor(industry string) float64 {
	if tam, ok := industryTAM[industry]; ok {
		return tam
	}
	return DefaultTAM
}

func GrowthRate(stage string) float64 {
	switch stage {
	case StagePreSeed:
		return 3.0
	case StageSeed:
		return 2.5
	case StageSeriesA:
		return 2.0
	case StageGrowth:
		return 1.5
	default:
		return DefaultGrowthRate
	}
}

func IsStage(stage string) bool {
	return contains(Stages, stage)
}

func IsRevenueModel(model string) bool {
	return contains(RevenueModels, model)
}

func IsIndustry(industry string) bool {
	_, ok := industryTAM[industry]
	return ok
}

func IndustryNames() []string {
	names := make([]string, len(Industries))
	for i, ind := range Industries {
		names[i] = ind.Name
	}
	return names
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
