// internal/workers/deck/portfolio-summary/models.go
package portfoliosummary

import "pitchdeck/internal/models"

type Input struct{}

type Output struct {
	Portfolio models.PortfolioSummary `json:"portfolio"`
}
