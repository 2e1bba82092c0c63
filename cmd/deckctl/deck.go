// cmd/deckctl/deck.go
package main

import (
	"fmt"
	"strings"

	"pitchdeck/internal/deck/derive"
	"pitchdeck/internal/deck/reference"
	"pitchdeck/internal/deck/scoring"
	"pitchdeck/internal/models"

	"github.com/spf13/cobra"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "score <deck.json>",
		Short: "Score a deck against the investor-readiness rubric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := readDeck(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			report := scoring.Score(deck)
			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				return writeJSON(out, report)
			}

			fmt.Fprintf(out, "%s: %d/%d (%s)\n", displayName(deck), report.Total, report.MaxTotal, report.Grade)
			fmt.Fprintln(out, report.Summary)
			for _, d := range report.Dimensions {
				fmt.Fprintf(out, "  %-22s %2d/%-2d %s\n", d.Name, d.Score, d.MaxScore, d.Status)
				for _, tip := range d.Tips {
					fmt.Fprintf(out, "      - %s\n", tip)
				}
			}
			fmt.Fprintf(out, "Checklist %d/%d\n", scoring.ChecklistDone(report.Checklist), len(report.Checklist))
			return nil
		},
	}
}

func newDeriveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <deck.json>",
		Short: "Print the market model, projection, use of funds and competitor map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := readDeck(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			view := derive.Build(deck)
			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				return writeJSON(out, view)
			}

			m := view.Market
			fmt.Fprintf(out, "Market  TAM %s  SAM %s  SOM %s\n",
				reference.FormatCurrency(m.TAM), reference.FormatCurrency(m.SAM), reference.FormatCurrency(m.SOM))

			fmt.Fprintf(out, "Projection (base %s, growth x%g)\n", reference.FormatCurrency(view.Projection.BaseRevenue), view.Projection.GrowthRate)
			for _, y := range view.Projection.Years {
				fmt.Fprintf(out, "  %s  %s\n", y.Year, reference.FormatCurrency(y.Revenue))
			}

			fmt.Fprintf(out, "Use of funds (ask %s)\n", reference.FormatCurrency(view.UseOfFunds.Ask))
			for _, b := range view.UseOfFunds.Buckets {
				fmt.Fprintf(out, "  %-20s %3.0f%%  %s\n", b.Name, b.Percent, reference.FormatCurrency(b.Amount))
			}

			fmt.Fprintln(out, "Competitors")
			for _, c := range view.Competitors {
				marker := " "
				if c.IsCompany {
					marker = "*"
				}
				fmt.Fprintf(out, " %s%-20s innovation %5.1f  reach %5.1f\n", marker, c.Name, c.Innovation, c.MarketReach)
			}

			if len(view.Channels) > 0 {
				fmt.Fprintf(out, "Channels: %s\n", strings.Join(view.Channels, ", "))
			}
			return nil
		},
	}
}

func newPortfolioCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio <deck.json>...",
		Short: "Summarise several decks: count, average score and best grade",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decks := make([]models.Deck, 0, len(args))
			for _, path := range args {
				deck, err := readDeck(path, cmd.InOrStdin())
				if err != nil {
					return err
				}
				decks = append(decks, deck)
			}
			summary := scoring.Portfolio(decks)
			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				return writeJSON(out, summary)
			}

			fmt.Fprintf(out, "%d decks, average %d, best %s\n", summary.DeckCount, summary.AverageScore, summary.BestGrade)
			for _, e := range summary.Decks {
				fmt.Fprintf(out, "  %-24s %3d  %s\n", orUntitled(e.CompanyName), e.Total, e.Grade)
			}
			return nil
		},
	}
}

func displayName(deck models.Deck) string {
	return orUntitled(deck.Basics.CompanyName)
}

func orUntitled(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Untitled deck"
	}
	return name
}
