// Package flushio provides buffered output that is explicitly flushed, such
// as before an interactive prompt.
package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher returns w if it already flushes; in memory buffers and
// io.Discard get a no-op Flush; anything else is wrapped in a bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return nopFlusher{w}
	}
	if w == io.Discard {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Tee combines any number of WriteFlushers into one that writes into, and
// flushes, all of them in order. Nil elements are skipped.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		if many, ok := wf.(tee); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (n int, err error) {
	for _, wf := range t {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// Flush flushes every writer, returning the first error.
func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
