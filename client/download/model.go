package download

import (
	"errors"
	"fmt"
)

var (
	ErrContentLength     = errors.New("invalid content length")
	ErrDownloadCancelled = errors.New("download cancelled")
)

type Error struct {
	Detail string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
