package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exsite-go/pkg/exsite"
	"github.com/ukaji3/exsite-go/pkg/exsite/output"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <workbook.xlsx>",
	Short: "Show how each sheet is treated by site lookup",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheets,
}

var sheetsPretty bool

func init() {
	sheetsCmd.Flags().BoolVar(&sheetsPretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(sheetsCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	reports, _, err := exsite.Inspect(args[0], extractOptions())
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	data, err := output.ToJSON(reports, sheetsPretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
