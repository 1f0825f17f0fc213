package download

import (
	"errors"
	"io"
)

// Option defines optional settings for downloading files.
// WithProgress enables whole-percent progress reporting: each time the
// integer percentage of the declared content length grows, the new
// value is written to w preceded by a carriage return.
type Option func(*options) error

type options struct {
	progress io.Writer
}

func WithProgress(w io.Writer) Option {
	return func(opts *options) error {
		if w == nil {
			return errors.New("progress writer must not be nil")
		}

		opts.progress = w
		return nil
	}
}
