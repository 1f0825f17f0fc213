package download

import (
	"fmt"
	"io"
)

// progressWriter is an io.Writer, reporting whole-percent progress to
// out as chunks land. A value is emitted only when the integer
// percentage grows, preceded by a carriage return so a terminal
// redraws the same line. lastReported starts at -1 so a first
// percentage of 0 is still emitted.
type progressWriter struct {
	w            io.Writer
	out          io.Writer
	transferred  int64
	total        int64
	lastReported int
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	pw.transferred += int64(len(p))

	n, err := pw.w.Write(p)
	if err != nil {
		return n, err
	}

	// A declared length of zero makes this divide fault.
	if pct := int(pw.transferred * 100 / pw.total); pct > pw.lastReported {
		pw.lastReported = pct
		fmt.Fprintf(pw.out, "\r%d", pct)
	}

	return n, nil
}
