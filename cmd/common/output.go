// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"

	"fjacquet/fincontrol/cmd/root"
	"fjacquet/fincontrol/internal/fileutils"
	"fjacquet/fincontrol/internal/validation"

	"github.com/spf13/cobra"
)

// Context returns the command context, or a background context when the
// command is run outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Format returns flag when set, otherwise the configured report format.
func Format(flag string) string {
	if flag != "" {
		return flag
	}
	return root.GetConfig().Report.Format
}

// Render encodes v in format and writes it to outputFile, or to the command
// output when outputFile is empty.
func Render(cmd *cobra.Command, v interface{}, format, outputFile string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	data, err := c.GetGenerator().Render(v, Format(format))
	if err != nil {
		return err
	}
	return WriteOutput(cmd, data, outputFile)
}

// WriteOutput writes data to outputFile, creating parent directories, or to
// the command output when outputFile is empty.
func WriteOutput(cmd *cobra.Command, data []byte, outputFile string) error {
	if outputFile == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			_, _ = fmt.Fprintln(out)
		}
		return nil
	}

	if err := validation.IsValidOutputPath(outputFile); err != nil {
		return err
	}
	if err := fileutils.WriteFile(outputFile, data); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	root.Log.WithField("file", outputFile).Info("Output written")
	return nil
}
