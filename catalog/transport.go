package catalog

import (
	"context"
	"net"
	"net/http"

	tls2 "github.com/refraction-networking/utls"
)

// newTransport returns an HTTP transport that presents a Chrome TLS
// fingerprint on HTTPS connections; marketplace endpoints deprioritize
// the default Go client hello. Plain-HTTP requests (test fixtures) use
// the standard dialer.
func newTransport() *http.Transport {
	return &http.Transport{
		DialTLSContext: dialTLSChrome,
	}
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint via utls.
func dialTLSChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	rawConn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls2.UClient(rawConn, &tls2.Config{
		ServerName: host,
	}, tls2.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}
