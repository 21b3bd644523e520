// Package classify handles dry-run transaction classification
package classify

import (
	"fmt"
	"strings"

	"fjacquet/fincontrol/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var amount string

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify TITLE",
	Short: "Show how a transaction title would be classified",
	Long: `Classify runs the classification rules against a title and amount without
storing anything. Negative amounts are income.`,
	Args: cobra.MinimumNArgs(1),
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0", "Transaction amount")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	title := strings.Join(args, " ")
	result := c.GetService().ClassifyTitle(title, value)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Kind:     %s (%s)\n", result.Kind, result.Kind.DisplayName())
	if !result.Matched {
		fmt.Fprintln(out, "Category: none")
		return nil
	}
	fmt.Fprintf(out, "Category: %s %s\n", result.Category.Icon, result.Category.Name)
	fmt.Fprintf(out, "Strategy: %s\n", result.Strategy)
	return nil
}
