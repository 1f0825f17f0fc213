package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
)

// chunkSize bounds each read from the response body.
const chunkSize = 4096

// Handle streams resp's body to destPath. The destination is opened
// for writing (truncating any existing content) before the
// Content-Length header is parsed, so a response with a missing or
// malformed header leaves an empty file behind, and a failure
// mid-body leaves a truncated one in place. The declared length is
// never reconciled against the bytes actually received.
func Handle(ctx context.Context, resp *http.Response, destPath string, logger *slog.Logger, optFns ...Option) error {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return fmt.Errorf("applying option: %w", err)
		}
	}

	file, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening destination file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Error("defer closing destination file", "path", destPath, "error", err)
		}
	}()

	total, err := strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
	if err != nil {
		return &Error{Err: ErrContentLength, Detail: err.Error()}
	}

	body := io.Reader(&contextReader{ctx: ctx, r: resp.Body})

	var writer io.Writer = file
	if opts.progress != nil {
		writer = &progressWriter{w: file, out: opts.progress, total: total, lastReported: -1}
	}

	buf := make([]byte, chunkSize)
	for {
		n, rErr := body.Read(buf)
		if n > 0 {
			if _, wErr := writer.Write(buf[:n]); wErr != nil {
				return fmt.Errorf("writing chunk: %w", wErr)
			}
		}
		if rErr == io.EOF {
			break
		}
		if rErr != nil {
			if errors.Is(rErr, context.Canceled) {
				return fmt.Errorf("%w: %w", ErrDownloadCancelled, rErr)
			}

			return fmt.Errorf("reading response body: %w", rErr)
		}
	}

	return nil
}

// contextReader stops the chunk loop between reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}
