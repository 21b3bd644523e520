// Package recategorize handles manual category assignment
package recategorize

import (
	"fmt"

	"fjacquet/fincontrol/cmd/common"
	"fjacquet/fincontrol/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the recategorize command
var Cmd = &cobra.Command{
	Use:   "recategorize TRANSACTION_ID CATEGORY_ID",
	Short: "Assign a category to a stored transaction",
	Long:  `Recategorize sets the category of a transaction by hand, with full confidence.`,
	Args:  cobra.ExactArgs(2),
	RunE:  recategorizeFunc,
}

func recategorizeFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	tx, err := c.GetService().Recategorize(common.Context(cmd), args[0], args[1])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s categorized as %s (confidence %s)\n",
		tx.ID, tx.Category.Name, tx.Confidence.StringFixed(2))
	return err
}
