package client

import (
	"errors"
	"net/http"
)

// execFn represents a func to operate on a response.
type execFn func(response *http.Response) error

// ErrTLSTransport indicates [WithTLSConfig] was combined with a base
// transport whose TLS settings cannot be replaced.
var ErrTLSTransport = errors.New("tls config requires an *http.Transport base")
