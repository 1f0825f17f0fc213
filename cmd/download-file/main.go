// Command download-file fetches a single file over mutually
// authenticated HTTPS.
//
// Usage:
//
//	download-file <url> <destination> <ca-certificate> <certificate> <key>
//
// The five arguments are echoed to standard output as they are read,
// followed by percent-complete progress while the body streams. All
// diagnostics go to standard error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	machines "github.com/skobyda/cockpit-machines"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidArgs  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 5 {
		printUsage(stderr)
		return ExitInvalidArgs
	}

	// Each input is echoed back as it is read.
	for _, arg := range args {
		fmt.Fprintln(stdout, arg)
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	req := machines.DownloadRequest{
		URL:           args[0],
		Path:          args[1],
		CACertificate: args[2],
		Certificate:   args[3],
		Key:           args[4],
		Progress:      stdout,
		Logger:        logger,
	}

	if err := machines.DownloadFile(context.Background(), req); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitGeneralError
	}

	return ExitSuccess
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: download-file <url> <destination> <ca-certificate> <certificate> <key>

Fetch a single file over HTTPS, verifying the server against the given
CA certificate and presenting the certificate/key pair as the client
identity. The five values are echoed to stdout as they are read, and
percent-complete progress follows on the same stream. The transfer has
no timeout and is never retried; whatever was written stays on disk if
it fails partway.`)
}
