package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestCert is a real self-signed certificate for testing
const validTestCert = `-----BEGIN CERTIFICATE-----
MIICoDCCAYgCCQD0S8sg5vCG5DANBgkqhkiG9w0BAQsFADASMRAwDgYDVQQDDAdU
ZXN0IENBMB4XDTI1MTAyOTIzMTgwMloXDTI2MTAyOTIzMTgwMlowEjEQMA4GA1UE
AwwHVGVzdCBDQTCCASIwDQYJKoZIhvcNAQEBBQADggEPADCCAQoCggEBAKlR1m2P
1pXdb23Y2KVkltvgLLEaA2KWrjQipFd6cWoG+9rDKv7BLzu2zozWW589yzmgo3NU
Gff0xF/vx7XCYwZxTTjnHgYS0FwotSdIyFThtFVYJZo188ipl63s2MOSEzJCsWoJ
YA+toUJi1O5yuJ9iFix8JCgtsp8RcRUm3MUQgCu5mr5i/6gDbk9gNF3dWausYqKx
UFVs6KXlkd6aPNWMdmZHU+9ibnQO2spNBq+gdmEWprdERtmgE2wfv08JSTIgfo7V
x+UowB8wYoM4+o3/7AEgG/g5vHbVJpRqrgR6v+kLoW45il25WDfvzPQtpTD6/PGz
6dE1L3uQnLU0XaECAwEAATANBgkqhkiG9w0BAQsFAAOCAQEACm+ZaiddI+X1xT+Y
QSBZ1/Ft/UL2d3+p1YyRV03ESB3QGQu5/zGvXrem/dFqAhgSQwjjBNR0s0uz3BC/
XNBhYyzpIvvIb3YsDhO08VS8soEuYsREPfO/eQCKrmTsGUsbaQV1M/79ghsGkpD2
lSufAR8kyscmp6FRvmpNCWigneDuHFrDBNanMtd8PLMxOcCFwH/kjObH61LbHS9z
uWC0tivgAd6n3qCGjpplw2VY/cN0XAHLFzyS5CAu6N4lZvLWcPqKLGJO1vevTaml
VZ5il3bOgM9OVuouB7Yx97EowRVDHifb3GCaI3NyKLL7JIizrS8WfWG1emHV996m
yxiEgg==
-----END CERTIFICATE-----
`

func TestVerifyUpstream_Valid(t *testing.T) {
	bundle := strings.Repeat(validTestCert, MinUpstreamCerts)

	report, err := VerifyUpstream([]byte(bundle))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, report.CertCount, MinUpstreamCerts)
	assert.Len(t, report.SHA256, 64)
	assert.False(t, report.HasDate)
}

func TestVerifyUpstream_WithMozillaDate(t *testing.T) {
	header := "##\n## Certificate data from Mozilla as of: Tue Sep  9 03:12:01 2025 GMT\n##\n"
	bundle := header + strings.Repeat(validTestCert, MinUpstreamCerts)

	report, err := VerifyUpstream([]byte(bundle))
	require.NoError(t, err)
	require.True(t, report.HasDate)
	assert.Equal(t, 2025, report.MozillaDate.Year())
}

func TestVerifyUpstream_TooFewCerts(t *testing.T) {
	bundle := strings.Repeat(validTestCert, 3)

	_, err := VerifyUpstream([]byte(bundle))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected at least")
}

func TestVerifyUpstream_Empty(t *testing.T) {
	_, err := VerifyUpstream(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestVerifyUpstream_NotPEM(t *testing.T) {
	_, err := VerifyUpstream([]byte("this is not a certificate bundle"))
	require.Error(t, err)
}
