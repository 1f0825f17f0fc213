// Package machines exposes the client builder and a high-level helper
// for fetching a file over mutually authenticated HTTPS.
package machines

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/trace"

	"github.com/skobyda/cockpit-machines/client"
	"github.com/skobyda/cockpit-machines/client/tlsconfig"
)

// NewClient instantiates a new *Client with the provided options.
// If not specified, a default http.Client and http.Transport are used.
func NewClient(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

// DownloadRequest carries everything needed to fetch a single file over
// mutually authenticated HTTPS.
type DownloadRequest struct {
	// URL of the file to fetch.
	URL string
	// Path of the destination file. It is created, or truncated if it
	// already exists, before the response headers are examined.
	Path string

	// CACertificate is a path to the PEM bundle the server certificate
	// is verified against. It replaces the system trust store.
	CACertificate string
	// Certificate and Key are paths to the PEM-encoded client pair
	// presented during the TLS handshake.
	Certificate string
	Key         string

	// Progress receives percent-complete output as the body streams.
	// Nil disables progress reporting.
	Progress io.Writer
	// Logger receives request diagnostics. slog.Default() when nil.
	Logger *slog.Logger
	// Tracer emits a span around the request. No-op when nil.
	Tracer trace.Tracer
}

// DownloadFile fetches req.URL into req.Path, authenticating both ends
// of the connection with the certificate material named in req. The
// certificate files are loaded before any network activity, so a bad
// path fails without the destination file ever being created. Once the
// server responds, the destination is truncated even if the response
// turns out to be unusable, and an interrupted transfer leaves the
// partial file in place.
func DownloadFile(ctx context.Context, req DownloadRequest) error {
	tlsCfg, err := tlsconfig.Load(req.CACertificate, req.Certificate, req.Key)
	if err != nil {
		return fmt.Errorf("loading certificate material: %w", err)
	}

	opts := []client.Option{client.WithTLSConfig(tlsCfg)}
	if req.Logger != nil {
		opts = append(opts, client.WithLogger(req.Logger))
	}
	if req.Tracer != nil {
		opts = append(opts, client.WithTracer(req.Tracer))
	}

	c, err := client.Build(opts...)
	if err != nil {
		return fmt.Errorf("building client: %w", err)
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		return fmt.Errorf("parsing url: %w", err)
	}

	httpReq, err := client.Request(ctx, u, http.MethodGet)
	if err != nil {
		return err
	}

	var dlOpts []client.DownloadOption
	if req.Progress != nil {
		dlOpts = append(dlOpts, client.WithProgress(req.Progress))
	}

	return c.Download(httpReq, req.Path, dlOpts...)
}
