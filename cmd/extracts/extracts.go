// Package extracts handles the extract listing and lookup commands
package extracts

import (
	"fmt"
	"text/tabwriter"

	"fjacquet/fincontrol/cmd/common"
	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/currencyutils"

	"github.com/spf13/cobra"
)

var (
	bank       string
	year       int
	month      int
	listFormat string
	getFormat  string
	output     string
)

// Cmd represents the extracts command
var Cmd = &cobra.Command{
	Use:   "extracts",
	Short: "List stored extracts",
	Long: `Extracts lists stored extracts, most recent first. A bank with both
--year and --month selects a single period; otherwise --bank, then --year
narrow the listing.`,
	Args: cobra.NoArgs,
	RunE: listFunc,
}

// GetCmd represents the extracts get command
var GetCmd = &cobra.Command{
	Use:   "get EXTRACT_ID",
	Short: "Show an extract with its transactions and category breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  getFunc,
}

func init() {
	Cmd.Flags().StringVarP(&bank, "bank", "b", "", "Bank identifier")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Reference year")
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Reference month (1-12)")
	Cmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format: text, json, xml or yaml")

	GetCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", "", "Output format: json, xml or yaml")
	Cmd.AddCommand(GetCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	summaries, err := c.GetService().ListExtracts(common.Context(cmd), bank, year, month)
	if err != nil {
		return err
	}

	if listFormat != "text" {
		return common.Render(cmd, summaries, listFormat, "")
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBANK\tPERIOD\tINCOME\tEXPENSES\tTRANSACTIONS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%04d-%02d\t%s\t%s\t%d\n",
			s.ID, s.Bank, s.ReferenceYear, s.ReferenceMonth,
			currencyutils.FormatAmount(s.TotalIncome), currencyutils.FormatAmount(s.TotalExpenses), s.TransactionCount)
	}
	return w.Flush()
}

func getFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	analysis, err := c.GetService().GetExtract(common.Context(cmd), args[0])
	if err != nil {
		return err
	}
	return common.Render(cmd, analysis, getFormat, output)
}
