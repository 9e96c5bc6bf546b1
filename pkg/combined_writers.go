package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all the underlying writers, collecting their errors
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.Writers {
		if _, werr := w.Write(p); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	// report the full length, as logrus treats short writes as failures
	return len(p), err
}
