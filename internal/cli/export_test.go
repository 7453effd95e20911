package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/princespaghetti/rootanchor"
)

func TestExportCmd_Exists(t *testing.T) {
	if exportCmd == nil {
		t.Fatal("exportCmd is nil")
	}

	if exportCmd.Use != "export <path>" {
		t.Errorf("exportCmd.Use = %q, want %q", exportCmd.Use, "export <path>")
	}
}

func TestExportCmd_Flags(t *testing.T) {
	flag := exportCmd.Flags().Lookup("force")
	if flag == nil {
		t.Fatal("--force flag not found")
	}

	if flag.DefValue != "false" {
		t.Errorf("--force default = %q, want %q", flag.DefValue, "false")
	}
}

func TestRunExport_WritesBundle(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "roots.pem")

	if err := runExport(exportCmd, []string{path}); err != nil {
		t.Fatalf("runExport() failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported bundle: %v", err)
	}

	if !bytes.Equal(got, rootanchor.Bundle()) {
		t.Error("exported file does not match the embedded bundle")
	}
}
