// Package rootanchor provides the root CA trust bundle compiled into the
// binary, so TLS clients can validate server certificates without depending
// on the host platform's certificate store.
package rootanchor

import (
	"crypto/x509"
	_ "embed"
	"sync"
)

// rootsPEM contains the curated root CA bundle embedded in the binary.
// The file is a plain concatenation of PEM CERTIFICATE blocks with no
// header comments, so it can be handed to a TLS trust-store API as-is.
// Refreshing it means replacing assets/roots.pem and rebuilding.
//
//go:embed assets/roots.pem
var rootsPEM []byte

// Bundle returns a copy of the embedded root CA bundle.
//
// The returned slice is owned by the caller; mutating it does not affect
// the embedded data or other callers. Bundle performs no I/O and never
// fails, so it is safe to call from any number of goroutines.
func Bundle() []byte {
	out := make([]byte, len(rootsPEM))
	copy(out, rootsPEM)
	return out
}

// Size returns the byte length of the embedded bundle. It always equals
// len(Bundle()).
func Size() int {
	return len(rootsPEM)
}

var (
	poolOnce sync.Once
	pool     *x509.CertPool
)

// Pool returns a certificate pool containing every certificate in the
// embedded bundle, suitable for tls.Config.RootCAs.
//
// The pool is built once and cloned per call, so callers may append their
// own anchors without affecting other callers.
func Pool() *x509.CertPool {
	poolOnce.Do(func() {
		pool = x509.NewCertPool()
		pool.AppendCertsFromPEM(rootsPEM)
	})
	return pool.Clone()
}
