// Package download streams HTTP response bodies to disk in bounded
// chunks with optional progress reporting.
//
// # Single Download
//
// [Handle] truncates the destination file and copies the response body
// into it, at most 4096 bytes at a time:
//
//	err := download.Handle(ctx, resp, destPath, logger,
//		download.WithProgress(os.Stdout),
//	)
//
// Progress is reported as whole percentages of the declared
// Content-Length, each value preceded by a carriage return so a
// terminal redraws a single line in place.
//
// Most callers should use the higher-level
// [github.com/skobyda/cockpit-machines/client] package, which invokes
// Handle internally and re-exports the download options as
// client.With* functions.
package download
