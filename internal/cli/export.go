package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/princespaghetti/rootanchor"
	"github.com/princespaghetti/rootanchor/internal/bundlefile"
	anchorerrors "github.com/princespaghetti/rootanchor/internal/errors"
	"github.com/princespaghetti/rootanchor/internal/inspect"
)

var exportForce bool

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the embedded trust bundle to a file",
	Long: `Write the embedded root CA bundle to a file for tools that take a
certificate file path (for example via SSL_CERT_FILE or --cacert flags).

The file is written atomically and guarded by an advisory lock, so
concurrent exports to the same path cannot leave a torn file. An existing
file is not overwritten unless --force is given.

Use "-" as the path to write the bundle to stdout.

Examples:
  rootanchor export /etc/ssl/rootanchor.pem
  rootanchor export --force ~/.config/rootanchor/roots.pem
  rootanchor export - > roots.pem`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "Overwrite an existing file")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	bundle := rootanchor.Bundle()

	if path == "-" {
		if _, err := os.Stdout.Write(bundle); err != nil {
			Error("Failed to write bundle to stdout: %v", err)
			os.Exit(anchorerrors.ExitGeneralError)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := bundlefile.Write(ctx, path, bundle, exportForce); err != nil {
		if anchorerrors.IsError(err, anchorerrors.ErrFileExists) {
			Error("%s already exists (use --force to overwrite)", path)
		} else {
			Error("Failed to export bundle: %v", err)
		}
		os.Exit(anchorerrors.ExitGeneralError)
	}

	Success("Exported %d certificates to %s", inspect.CountCertificates(bundle), path)
	return nil
}
