package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Location names an a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune and line reading through a Queue of one
// or more input streams. Both the current and last scanned lines are tracked
// to facilitate user feedback.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed. Queued
// streams are read one after another, as if concatenated.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		r, n, next, err := in.readRune()
		if !next {
			return r, n, err
		}
	}
}

// ReadLine reads up to the next line feed, returning the line without its
// terminator; any trailing carriage return is dropped too. Lines do not span
// queued streams: a final unterminated line is returned on its own. Returns
// io.EOF only once every queued stream is exhausted.
func (in *Input) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		r, _, next, err := in.readRune()
		switch {
		case next:
			if sb.Len() > 0 {
				return sb.String(), nil
			}
		case err != nil:
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		case r == '\n':
			return strings.TrimSuffix(sb.String(), "\r"), nil
		default:
			sb.WriteRune(r)
		}
	}
}

// readRune reads from the current stream; next is true, with no rune, when
// that stream just ended and the following queued one became current.
func (in *Input) readRune() (r rune, n int, next bool, err error) {
	if in.rr == nil && !in.nextIn() {
		return 0, 0, false, io.EOF
	}
	r, n, err = in.rr.ReadRune()
	if err == nil {
		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, false, nil
	}
	if err == io.EOF && in.nextIn() {
		return 0, 0, true, nil
	}
	return 0, 0, false, err
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	in.nextLine()
	in.rr = nil
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = newRuneReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func newRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
