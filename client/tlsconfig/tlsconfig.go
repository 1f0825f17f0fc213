// Package tlsconfig assembles client [tls.Config] values for mutually
// authenticated HTTPS from PEM files on disk.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// ErrNoCertificates indicates a PEM bundle that yielded no usable
// certificates.
var ErrNoCertificates = errors.New("no certificates found in PEM data")

// Load builds a client-side TLS configuration that verifies the server
// against the CA bundle at caPath and presents the certificate/key pair
// at certPath and keyPath during the handshake. The CA bundle replaces
// the system trust store rather than extending it.
func Load(caPath, certPath, keyPath string) (*tls.Config, error) {
	pool, err := LoadCA(caPath)
	if err != nil {
		return nil, err
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("loading client key pair: %w", err)
	}

	return &tls.Config{
		RootCAs:      pool,
		Certificates: []tls.Certificate{cert},
	}, nil
}

// LoadCA reads the PEM bundle at caPath into a certificate pool.
func LoadCA(caPath string) (*x509.CertPool, error) {
	pemData, err := os.ReadFile(caPath)
	if err != nil {
		return nil, fmt.Errorf("reading ca certificate: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemData) {
		return nil, fmt.Errorf("ca certificate %s: %w", caPath, ErrNoCertificates)
	}

	return pool, nil
}
