package fetcher

import (
	"fmt"
	"time"

	"github.com/princespaghetti/rootanchor/internal/inspect"
)

const (
	// MinUpstreamCerts is the minimum number of certificates expected in a
	// genuine Mozilla bundle. A download below this floor is rejected rather
	// than used as a comparison baseline.
	MinUpstreamCerts = 100
)

// UpstreamReport describes a verified upstream bundle.
type UpstreamReport struct {
	CertCount   int
	SHA256      string
	MozillaDate time.Time
	HasDate     bool
}

// VerifyUpstream checks that a downloaded bundle is plausible Mozilla data
// before it is trusted as a comparison baseline: it must decode as PEM and
// carry at least MinUpstreamCerts certificates.
func VerifyUpstream(data []byte) (*UpstreamReport, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("upstream bundle is empty")
	}

	certCount := inspect.CountCertificates(data)
	if certCount < MinUpstreamCerts {
		return nil, fmt.Errorf("upstream bundle contains only %d certificates, expected at least %d", certCount, MinUpstreamCerts)
	}

	report := &UpstreamReport{
		CertCount: certCount,
		SHA256:    inspect.SHA256Hex(data),
	}

	if date, found := inspect.MozillaDate(data); found {
		report.MozillaDate = date
		report.HasDate = true
	}

	return report, nil
}
