// Package report handles the monthly report command
package report

import (
	"fjacquet/fincontrol/cmd/common"
	"fjacquet/fincontrol/cmd/root"

	"github.com/spf13/cobra"
)

var (
	month  int
	year   int
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the financial report of a month",
	Long: `Report aggregates every extract of a month: income, expenses, net amount,
category breakdown, daily expenses and the largest expenses. A month without
data yields an empty report.`,
	Args: cobra.NoArgs,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month (1-12)")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, xml or yaml")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	_ = Cmd.MarkFlagRequired("month")
	_ = Cmd.MarkFlagRequired("year")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	r, err := c.GetService().GetMonthlyReport(common.Context(cmd), year, month)
	if err != nil {
		return err
	}
	return common.Render(cmd, r, format, output)
}
