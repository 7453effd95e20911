package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/princespaghetti/rootanchor"
	anchorerrors "github.com/princespaghetti/rootanchor/internal/errors"
	"github.com/princespaghetti/rootanchor/internal/fetcher"
	"github.com/princespaghetti/rootanchor/internal/inspect"
)

var (
	checkJSON bool
	checkURL  string
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the embedded bundle for staleness against upstream",
	Long: `Download the upstream Mozilla CA bundle and compare it against the
bundle embedded in this binary.

The embedded bundle can only be refreshed by rebuilding and redistributing
the binary, so this command gives operators the signal to do that rebuild:

  - embedded roots no longer present upstream (possible distrust)
  - embedded roots expiring within a year
  - upstream bundle date, when the header carries one

By default, downloads from: https://curl.se/ca/cacert.pem

Examples:
  rootanchor check
  rootanchor check --json
  rootanchor check --url https://internal-mirror.corp.com/cacert.pem`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
	checkCmd.Flags().StringVar(&checkURL, "url", fetcher.DefaultUpstreamURL, "URL to download the upstream bundle from")
}

// CheckOutput represents the output of the check command.
type CheckOutput struct {
	EmbeddedCertCount int       `json:"embedded_cert_count"`
	UpstreamCertCount int       `json:"upstream_cert_count"`
	UpstreamSHA256    string    `json:"upstream_sha256"`
	UpstreamDate      time.Time `json:"upstream_date,omitempty"`
	MissingUpstream   []string  `json:"missing_upstream,omitempty"`
	ExpiringSoon      []string  `json:"expiring_soon,omitempty"`
	Stale             bool      `json:"stale"`
}

// compareBundles diffs the embedded bundle against verified upstream data.
// An embedded root absent from the upstream set may have been distrusted;
// one expiring within a year of now needs a rebuild before it lapses.
func compareBundles(embedded, upstream []byte, now time.Time) (*CheckOutput, error) {
	embeddedCerts, err := inspect.ListCertificates(embedded)
	if err != nil {
		return nil, fmt.Errorf("inspect embedded bundle: %w", err)
	}

	upstreamCerts, err := inspect.ListCertificates(upstream)
	if err != nil {
		return nil, fmt.Errorf("inspect upstream bundle: %w", err)
	}

	upstreamSet := make(map[string]bool, len(upstreamCerts))
	for _, cert := range upstreamCerts {
		upstreamSet[cert.Fingerprint] = true
	}

	out := &CheckOutput{
		EmbeddedCertCount: len(embeddedCerts),
		UpstreamCertCount: len(upstreamCerts),
		UpstreamSHA256:    inspect.SHA256Hex(upstream),
	}

	expiryHorizon := now.AddDate(1, 0, 0)
	for _, cert := range embeddedCerts {
		if !upstreamSet[cert.Fingerprint] {
			out.MissingUpstream = append(out.MissingUpstream, cert.Subject)
		}
		if cert.NotAfter.Before(expiryHorizon) {
			out.ExpiringSoon = append(out.ExpiringSoon, cert.Subject)
		}
	}

	out.Stale = len(out.MissingUpstream) > 0 || len(out.ExpiringSoon) > 0
	return out, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	if !checkJSON {
		fmt.Printf("Downloading upstream CA bundle from %s...\n", checkURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	f := fetcher.NewFetcher(nil)
	upstream, err := f.FetchBundle(ctx, checkURL)
	if err != nil {
		Error("Failed to download upstream bundle: %v", err)
		os.Exit(anchorerrors.ExitNetworkError)
	}

	report, err := fetcher.VerifyUpstream(upstream)
	if err != nil {
		Error("Upstream bundle failed verification: %v", err)
		os.Exit(anchorerrors.ExitCertError)
	}

	out, err := compareBundles(rootanchor.Bundle(), upstream, time.Now())
	if err != nil {
		Error("Failed to compare bundles: %v", err)
		os.Exit(anchorerrors.ExitCertError)
	}
	if report.HasDate {
		out.UpstreamDate = report.MozillaDate
	}

	if checkJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			Error("Failed to encode JSON: %v", err)
			os.Exit(anchorerrors.ExitGeneralError)
		}
	} else {
		printCheckHuman(out)
	}

	if out.Stale {
		os.Exit(anchorerrors.ExitCertError)
	}
	return nil
}

func printCheckHuman(out *CheckOutput) {
	fmt.Println()
	Field("Embedded roots", fmt.Sprintf("%d", out.EmbeddedCertCount))
	Field("Upstream roots", fmt.Sprintf("%d", out.UpstreamCertCount))
	if !out.UpstreamDate.IsZero() {
		Field("Upstream date", out.UpstreamDate.Format("January 2, 2006"))
	}
	fmt.Println()

	for _, subject := range out.MissingUpstream {
		Warning("no longer in the upstream bundle: %s", subject)
	}
	for _, subject := range out.ExpiringSoon {
		Warning("expires within a year: %s", subject)
	}

	if out.Stale {
		fmt.Println()
		fmt.Println("The embedded bundle needs a refresh: update assets/roots.pem and rebuild.")
	} else {
		Success("Embedded bundle is in sync with upstream")
	}
}
