package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/skobyda/cockpit-machines/client/download"
	"github.com/skobyda/cockpit-machines/client/throttle"
)

// Client wraps the std-lib *http.Client.
// It sets a default *http.Client and *http.Transport, which
// can be customized via optional funcs.
type Client struct {
	c      *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:      &http.Client{},
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer(""),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.tlsConfig != nil {
		base, ok := transport.(*http.Transport)
		if !ok {
			return nil, fmt.Errorf("%w, got %T", ErrTLSTransport, transport)
		}
		base = base.Clone()
		base.TLSClientConfig = opts.tlsConfig
		transport = base
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Download executes the request and streams the response body to destPath.
// The destination file is created or truncated before the response headers
// are inspected, and whatever was copied stays on disk if the transfer
// fails midway. The response status code is not inspected; error pages
// stream to destPath like any other body.
func (c *Client) Download(req *http.Request, destPath string, opts ...DownloadOption) error {
	if destPath == "" {
		return errors.New("destPath must not be empty")
	}

	dlFunc := func(resp *http.Response) error {
		if err := download.Handle(req.Context(), resp, destPath, c.logger, opts...); err != nil {
			return fmt.Errorf("download: %w", err)
		}

		return nil
	}

	return c.exec(req, "client.download", dlFunc)
}

// Request instantiates an *http.Request with the provided information.
// It's just a convenience method that wraps the public Request func.
func (c *Client) Request(ctx context.Context, reqURL *url.URL, method string) (*http.Request, error) {
	return Request(ctx, reqURL, method)
}

// exec runs the request and the injected function on the raw response.
func (c *Client) exec(req *http.Request, op string, fn execFn) error {
	ctx, span := c.tracer.Start(req.Context(), op, trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("url.full", req.URL.String()),
	))
	defer span.End()

	requestID := uuid.New().String()
	c.logger.Debug("request started", "request_id", requestID, "method", req.Method, "url", req.URL.String())

	resp, err := c.c.Do(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("exec http do: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err = io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err = resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("response received", "request_id", requestID, "status", resp.StatusCode, "content_length", resp.Header.Get("Content-Length"))

	if err := fn(resp); err != nil {
		discardBody = false
		span.RecordError(err)
		return fmt.Errorf("exec fn: %w", err)
	}

	return nil
}

// Request instantiates an *http.Request with the provided information.
// The request carries no headers beyond the transport defaults.
func Request(ctx context.Context, reqURL *url.URL, method string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	return req, nil
}
