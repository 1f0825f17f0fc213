package client

import (
	"io"

	"github.com/skobyda/cockpit-machines/client/download"
)

// ————————————————————————————————————————————————————————————————————
// Type aliases – re-export user-facing types from [download].
// ————————————————————————————————————————————————————————————————————

type (
	// DownloadOption is a functional option for [Client.Download].
	DownloadOption = download.Option

	// DownloadError wraps a sentinel error with additional detail.
	DownloadError = download.Error
)

// ————————————————————————————————————————————————————————————————————
// Sentinel errors
// ————————————————————————————————————————————————————————————————————

var (
	// ErrContentLength indicates a missing or malformed Content-Length header.
	ErrContentLength = download.ErrContentLength

	// ErrDownloadCancelled indicates the download was cancelled via context.
	ErrDownloadCancelled = download.ErrDownloadCancelled
)

// ————————————————————————————————————————————————————————————————————
// Download option forwarding functions
// ————————————————————————————————————————————————————————————————————

// WithProgress streams percent-complete figures to w as the download
// advances, each prefixed with a carriage return so a terminal shows a
// single updating number.
func WithProgress(w io.Writer) DownloadOption { return download.WithProgress(w) }
