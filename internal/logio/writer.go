package logio

import (
	"bytes"
	"sync"
)

// Writer is an io.Writer that logs each complete line written to it through
// Logf; Sync or Close log any final partial line.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p and logs any completed lines. Always succeeds.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync logs any remaining partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			lw.Logf("%s", lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
