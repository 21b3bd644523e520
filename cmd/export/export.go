// Package export handles exporting the transactions of a month to CSV
package export

import (
	"bytes"

	"fjacquet/fincontrol/cmd/common"
	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/logging"
	"fjacquet/fincontrol/internal/report"
	"fjacquet/fincontrol/internal/validation"

	"github.com/spf13/cobra"
)

var (
	month     int
	year      int
	output    string
	delimiter string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transactions of a month as CSV",
	Args:  cobra.NoArgs,
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month (1-12)")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Year")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	Cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "CSV field delimiter")
	_ = Cmd.MarkFlagRequired("month")
	_ = Cmd.MarkFlagRequired("year")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	comma, err := validation.IsValidDelimiter(delimiter)
	if err != nil {
		return err
	}

	data, err := c.GetService().MonthlyReportData(common.Context(cmd), year, month)
	if err != nil {
		return err
	}

	if output != "" {
		if err := report.WriteTransactionsCSVFile(output, data.Transactions, comma); err != nil {
			return err
		}
		root.Log.WithField(logging.FieldFile, output).Info("Transactions exported",
			logging.F(logging.FieldCount, len(data.Transactions)))
		return nil
	}

	var buf bytes.Buffer
	if err := report.WriteTransactionsCSV(&buf, data.Transactions, comma); err != nil {
		return err
	}
	return common.WriteOutput(cmd, buf.Bytes(), "")
}
