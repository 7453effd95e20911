// Package inspect provides pure functions for examining PEM certificate
// bundles: counting, structural validation, digests and per-certificate
// metadata extraction.
package inspect

import (
	"bytes"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"regexp"
	"time"

	anchorerrors "github.com/princespaghetti/rootanchor/internal/errors"
)

// CertInfo contains extracted certificate information.
type CertInfo struct {
	Subject     string    `json:"subject"`
	Fingerprint string    `json:"fingerprint"`
	NotAfter    time.Time `json:"not_after"`
}

// CountCertificates counts the number of valid certificates in a PEM bundle.
func CountCertificates(pemData []byte) int {
	count := 0
	remaining := pemData

	for {
		block, rest := pem.Decode(remaining)
		if block == nil {
			break
		}

		// Only count CERTIFICATE blocks
		if block.Type == "CERTIFICATE" {
			// Try to parse to verify it's a valid certificate
			if _, err := x509.ParseCertificate(block.Bytes); err == nil {
				count++
			}
		}

		remaining = rest
	}

	return count
}

// ValidateBundle checks that data is a clean concatenation of CERTIFICATE
// PEM blocks: every block decodes, every block is a certificate, and nothing
// but whitespace appears between or after blocks. Empty input is valid (an
// empty trust store).
func ValidateBundle(data []byte) error {
	remaining := data
	index := 0

	for len(bytes.TrimSpace(remaining)) > 0 {
		block, rest := pem.Decode(remaining)
		if block == nil {
			return &anchorerrors.AnchorError{
				Op:  "validate bundle",
				Err: fmt.Errorf("block %d: %w", index, anchorerrors.ErrInvalidPEM),
			}
		}

		if block.Type != "CERTIFICATE" {
			return &anchorerrors.AnchorError{
				Op:  "validate bundle",
				Err: fmt.Errorf("block %d has type %q: %w", index, block.Type, anchorerrors.ErrNotCertificate),
			}
		}

		if _, err := x509.ParseCertificate(block.Bytes); err != nil {
			return &anchorerrors.AnchorError{
				Op:  "validate bundle",
				Err: fmt.Errorf("block %d: invalid x509 certificate: %w", index, err),
			}
		}

		// pem.Decode skips leading garbage silently; reject anything
		// between the previous block and this one.
		prefix := remaining[:len(remaining)-len(rest)]
		header := prefix[:bytes.Index(prefix, []byte("-----BEGIN"))]
		if len(bytes.TrimSpace(header)) > 0 {
			return &anchorerrors.AnchorError{
				Op:  "validate bundle",
				Err: fmt.Errorf("garbage before block %d: %w", index, anchorerrors.ErrInvalidPEM),
			}
		}

		index++
		remaining = rest
	}

	return nil
}

// ListCertificates extracts subject, expiry and SHA256 fingerprint for each
// certificate in the bundle.
func ListCertificates(pemData []byte) ([]CertInfo, error) {
	var infos []CertInfo
	remaining := pemData
	index := 0

	for {
		block, rest := pem.Decode(remaining)
		if block == nil {
			break
		}
		remaining = rest

		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, &anchorerrors.AnchorError{
				Op:  "list certificates",
				Err: fmt.Errorf("certificate %d: %w", index, err),
			}
		}

		// Fingerprint covers the DER-encoded certificate.
		hash := sha256.Sum256(cert.Raw)
		infos = append(infos, CertInfo{
			Subject:     cert.Subject.String(),
			Fingerprint: "sha256:" + hex.EncodeToString(hash[:]),
			NotAfter:    cert.NotAfter,
		})
		index++
	}

	return infos, nil
}

// SHA256Hex computes the SHA256 hash of data and returns it as a hex string.
func SHA256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// mozillaDateRegex matches the date header carried by curl.se bundles, e.g.
// ## Certificate data from Mozilla as of: Tue Sep  9 03:12:01 2025 GMT
var mozillaDateRegex = regexp.MustCompile(`Certificate data from Mozilla as of:\s+([A-Za-z]{3}\s+[A-Za-z]{3}\s+\d{1,2}\s+\d{2}:\d{2}:\d{2}\s+\d{4}\s+GMT)`)

// MozillaDate attempts to extract the Mozilla bundle date from the header
// comments of a downloaded bundle.
func MozillaDate(bundleData []byte) (time.Time, bool) {
	// The header sits in the first 1KB of the file.
	header := bundleData
	if len(header) > 1024 {
		header = header[:1024]
	}

	matches := mozillaDateRegex.FindSubmatch(header)
	if len(matches) < 2 {
		return time.Time{}, false
	}

	parsedDate, err := time.Parse("Mon Jan _2 15:04:05 2006 MST", string(matches[1]))
	if err != nil {
		return time.Time{}, false
	}

	return parsedDate, true
}
