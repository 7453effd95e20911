package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/princespaghetti/rootanchor"
	anchorerrors "github.com/princespaghetti/rootanchor/internal/errors"
	"github.com/princespaghetti/rootanchor/internal/inspect"
)

var infoJSON bool

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display embedded trust bundle information",
	Long: `Display information about the root CA bundle compiled into this binary.

Shows:
  - Bundle size and SHA256 hash
  - Certificate count
  - Subject, expiry and fingerprint of each root certificate

Examples:
  rootanchor info
  rootanchor info --json`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output in JSON format")
}

// InfoOutput represents the output of the info command.
type InfoOutput struct {
	SizeBytes int                `json:"size_bytes"`
	SHA256    string             `json:"sha256"`
	CertCount int                `json:"cert_count"`
	Certs     []inspect.CertInfo `json:"certs"`
}

// gatherInfo collects bundle details from the embedded data.
func gatherInfo() (*InfoOutput, error) {
	bundle := rootanchor.Bundle()

	certs, err := inspect.ListCertificates(bundle)
	if err != nil {
		return nil, err
	}

	return &InfoOutput{
		SizeBytes: rootanchor.Size(),
		SHA256:    inspect.SHA256Hex(bundle),
		CertCount: len(certs),
		Certs:     certs,
	}, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := gatherInfo()
	if err != nil {
		Error("Failed to inspect embedded bundle: %v", err)
		os.Exit(anchorerrors.ExitCertError)
	}

	if infoJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			Error("Failed to encode JSON: %v", err)
			os.Exit(anchorerrors.ExitGeneralError)
		}
		return nil
	}

	printInfoHuman(info)
	return nil
}

func printInfoHuman(info *InfoOutput) {
	Header("Embedded Root CA Bundle")
	Field("Certificates", fmt.Sprintf("%d", info.CertCount))
	Field("Size", formatBytes(int64(info.SizeBytes)))
	Field("SHA256", info.SHA256)
	fmt.Println()

	for _, cert := range info.Certs {
		fmt.Printf("  %s\n", cert.Subject)
		fmt.Printf("    expires:     %s\n", cert.NotAfter.Format("2006-01-02"))
		fmt.Printf("    fingerprint: %s\n", cert.Fingerprint)
	}
	fmt.Println()

	// Surface roots close to their expiry so operators rebuild in time.
	soon := time.Now().AddDate(1, 0, 0)
	for _, cert := range info.Certs {
		if cert.NotAfter.Before(soon) {
			Warning("%s expires %s", cert.Subject, cert.NotAfter.Format("2006-01-02"))
		}
	}
}
