// Package main provides the entry point for the fincontrol CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/fincontrol/cmd/categories"
	"fjacquet/fincontrol/cmd/classify"
	"fjacquet/fincontrol/cmd/export"
	"fjacquet/fincontrol/cmd/extracts"
	"fjacquet/fincontrol/cmd/importer"
	"fjacquet/fincontrol/cmd/recategorize"
	"fjacquet/fincontrol/cmd/report"
	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/apperror"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(importer.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(recategorize.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(extracts.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(apperror.ExitCode(err))
	}
}
