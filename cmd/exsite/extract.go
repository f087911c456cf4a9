package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exsite-go/pkg/exsite"
	"github.com/ukaji3/exsite-go/pkg/exsite/output"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract <workbook.xlsx>",
	Short: "Extract one site record from a workbook",
	Long: `Finds the row holding --site-id in any lookup sheet, merges it with the
variable template sheet and writes the site record as CSV.

The output file defaults to {location}_{site-id}.csv in --out-dir. Use
--out - to write to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var (
	extractSiteID        string
	extractGroup         string
	extractTemplateSheet string
	extractStartMarker   string
	extractOut           string
	extractOutDir        string
	extractReconcile     bool
)

func init() {
	extractCmd.Flags().StringVar(&extractSiteID, "site-id", "", "Site identifier to look up (required)")
	extractCmd.Flags().StringVar(&extractGroup, "group", "", "Site group name (overrides config)")
	extractCmd.Flags().StringVar(&extractTemplateSheet, "template-sheet", "", "Variable template sheet name (overrides config)")
	extractCmd.Flags().StringVar(&extractStartMarker, "start-marker", "", "Variable name where template collection starts")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output CSV path, - for stdout")
	extractCmd.Flags().StringVar(&extractOutDir, "out-dir", ".", "Directory for the default output file")
	extractCmd.Flags().BoolVar(&extractReconcile, "reconcile", false, "Check whether the site already exists in the directory")
	_ = extractCmd.MarkFlagRequired("site-id")

	rootCmd.AddCommand(extractCmd)
}

func extractOptions() exsite.Options {
	opts := exsite.DefaultOptions()
	opts.MinIdentifierLength = cfg.Extract.MinIdentifierLength
	opts.ExcludeKeywords = cfg.Extract.ExcludeKeywords
	opts.TemplateSheet = cfg.Extract.TemplateSheet
	opts.StartMarker = cfg.Extract.StartMarker
	opts.Group = cfg.Extract.Group
	if extractTemplateSheet != "" {
		opts.TemplateSheet = extractTemplateSheet
	}
	if extractStartMarker != "" {
		opts.StartMarker = extractStartMarker
	}
	if extractGroup != "" {
		opts.Group = extractGroup
	}
	opts.Logger = logger
	return opts
}

func runExtract(cmd *cobra.Command, args []string) error {
	res, err := exsite.Extract(args[0], extractSiteID, extractOptions())
	if err != nil {
		var notFound *exsite.NotFoundError
		if errors.As(err, &notFound) && len(notFound.Samples) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Available site ids:\n%s", notFound.Describe())
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	var buf bytes.Buffer
	if err := output.WriteRecordCSV(&buf, res.Record); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if extractOut == "-" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
	} else {
		path := extractOut
		if path == "" {
			path = filepath.Join(extractOutDir, output.DefaultFileName(res.Record.Location, extractSiteID))
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("record written", zap.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	if extractReconcile {
		return reconcile(cmd, res.Record.Name)
	}
	return nil
}

// reconcile reports whether a site with the record's name already exists.
func reconcile(cmd *cobra.Command, name string) error {
	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	client, err := newDirectoryClient("", "", "")
	if err != nil {
		return err
	}
	mapping, err := client.ListDirectory(ctx)
	if err != nil {
		return fmt.Errorf("directory listing failed: %w", err)
	}

	if id, ok := mapping.FindName(name); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "site %q already exists (id %s)\n", name, id)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "site %q is not in the directory\n", name)
	return nil
}
