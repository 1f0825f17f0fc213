// Package client provides the core implementation of the configurable HTTP
// client built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Mutual TLS
//
// Servers that demand a client certificate are reached by loading the
// trust anchor and key pair into a [tls.Config], usually via the
// tlsconfig package, and passing it to [WithTLSConfig]:
//
//	cfg, err := tlsconfig.Load(caPath, certPath, keyPath)
//	c, err := client.Build(client.WithTLSConfig(cfg))
//
// # Downloading Files
//
// Construct a [Request] and stream the response body directly to disk,
// optionally echoing percent-complete progress to a writer:
//
//	req, err := client.Request(ctx, u, http.MethodGet)
//	err = c.Download(req, "/tmp/disk.iso",
//		client.WithProgress(os.Stdout),
//	)
//
// The response status code is never checked: a 404 error page streams
// to the destination file the same way a 200 body does. The
// destination is truncated before the Content-Length header is parsed,
// so a response without a usable length leaves an empty file behind,
// and an interrupted transfer leaves a partial one.
//
// For lower-level control see the
// [github.com/skobyda/cockpit-machines/client/download] package.
package client
