// Package importer handles the import command
package importer

import (
	"fmt"
	"path/filepath"

	"fjacquet/fincontrol/cmd/common"
	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/fileutils"
	"fjacquet/fincontrol/internal/service"

	"github.com/spf13/cobra"
)

var (
	bank   string
	month  int
	year   int
	format string
	output string
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a bank statement CSV for a reference month",
	Long: `Import parses a bank statement CSV, classifies every transaction and stores
the extract. A bank can hold one extract per month; importing the same period
twice fails with exit code 3.`,
	Args: cobra.ExactArgs(1),
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&bank, "bank", "b", "", "Bank identifier (e.g. NUBANK)")
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Reference month (1-12)")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Reference year")
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, xml or yaml")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	_ = Cmd.MarkFlagRequired("bank")
	_ = Cmd.MarkFlagRequired("month")
	_ = Cmd.MarkFlagRequired("year")
}

func importFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	path := args[0]
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading statement: %w", err)
	}

	analysis, err := c.GetService().ProcessExtractFile(common.Context(cmd),
		service.Upload{Data: data, Filename: filepath.Base(path)}, bank, month, year)
	if err != nil {
		return err
	}

	return common.Render(cmd, analysis, format, output)
}
