package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exsite-go/pkg/exsite/directory"
	"github.com/ukaji3/exsite-go/pkg/exsite/output"
	"go.uber.org/zap"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the sites of the remote directory",
	Long: `Fetches every site of the organization, following pagination and retrying
rate-limited requests, and prints an id -> name mapping.

The API token is read from MIST_API_TOKEN or --token.`,
	Args: cobra.NoArgs,
	RunE: runSites,
}

var (
	sitesToken   string
	sitesOrgID   string
	sitesBaseURL string
	sitesFormat  string
	sitesOutfile string
	sitesPretty  bool
)

func init() {
	sitesCmd.Flags().StringVar(&sitesToken, "token", "", "API token (overrides MIST_API_TOKEN)")
	sitesCmd.Flags().StringVar(&sitesOrgID, "org-id", "", "Organization id (default: first accessible)")
	sitesCmd.Flags().StringVar(&sitesBaseURL, "base-url", "", "API base URL (overrides config)")
	sitesCmd.Flags().StringVar(&sitesFormat, "format", "json", "Output format: json or csv")
	sitesCmd.Flags().StringVarP(&sitesOutfile, "outfile", "o", "", "Output file path (default: stdout, json only)")
	sitesCmd.Flags().BoolVar(&sitesPretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(sitesCmd)
}

// newDirectoryClient builds a client from config; non-empty arguments
// override it.
func newDirectoryClient(token, orgID, baseURL string) (*directory.Client, error) {
	dc := directory.DefaultConfig()
	dc.BaseURL = cfg.Directory.BaseURL
	dc.Token = cfg.Directory.Token
	dc.CollectionID = cfg.Directory.OrgID
	dc.PageSize = cfg.Directory.PageSize
	dc.MaxAttempts = cfg.Directory.MaxAttempts
	dc.Backoff.Base = cfg.Directory.RetryBase()
	dc.Timeout = cfg.Directory.Timeout()
	if token != "" {
		dc.Token = token
	}
	if orgID != "" {
		dc.CollectionID = orgID
	}
	if baseURL != "" {
		dc.BaseURL = baseURL
	}
	return directory.NewClient(dc, logger)
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runSites(cmd *cobra.Command, _ []string) error {
	var data []byte
	switch sitesFormat {
	case "json":
	case "csv":
		if sitesOutfile == "" {
			return fmt.Errorf("--outfile is required for csv output")
		}
	default:
		return fmt.Errorf("invalid format: %s (must be json or csv)", sitesFormat)
	}

	client, err := newDirectoryClient(sitesToken, sitesOrgID, sitesBaseURL)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	mapping, err := client.ListDirectory(ctx)
	if err != nil {
		return fmt.Errorf("directory listing failed: %w", err)
	}

	if sitesFormat == "csv" {
		var buf bytes.Buffer
		if err := output.WriteMappingCSV(&buf, mapping); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = buf.Bytes()
	} else {
		data, err = output.MappingToJSON(mapping, sitesPretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = append(data, '\n')
	}

	if sitesOutfile != "" {
		if err := os.WriteFile(sitesOutfile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("site mapping written", zap.String("path", sitesOutfile), zap.Int("sites", mapping.Len()))
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
