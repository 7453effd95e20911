// Package cli provides the command-line interface for rootanchor.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (will be set by build flags in production).
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rootanchor",
	Short: "Inspect and export the embedded root CA trust bundle",
	Long: `rootanchor ships a curated set of root CA certificates compiled into
the binary, so TLS clients can validate server certificates without relying
on the host platform's certificate store.

The CLI inspects the embedded bundle, exports it to disk for tools that
take a certificate file path, and checks it for staleness against the
upstream Mozilla bundle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rootanchor version %s\n", Version)
		fmt.Printf("  commit: %s\n", GitCommit)
		fmt.Printf("  built:  %s\n", BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and handles errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
