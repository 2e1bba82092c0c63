// cmd/deckctl/root.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pitchdeck/internal/models"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type rootOptions struct {
	format string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "deckctl",
		Short:         "Score, derive and manage pitch decks from the command line",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("--output must be %q or %q", formatText, formatJSON)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.format, "output", "o", formatText, "output format: text or json")

	cmd.AddCommand(
		newScoreCmd(opts),
		newDeriveCmd(opts),
		newPortfolioCmd(opts),
		newTemplatesCmd(opts),
		newRegistryCmd(opts),
	)
	return cmd
}

// readDeck loads one deck from a JSON file, or stdin when path is "-".
func readDeck(path string, stdin io.Reader) (models.Deck, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return models.Deck{}, fmt.Errorf("read deck %s: %w", path, err)
	}
	var deck models.Deck
	if err := json.Unmarshal(raw, &deck); err != nil {
		return models.Deck{}, fmt.Errorf("parse deck %s: %w", path, err)
	}
	return deck, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
