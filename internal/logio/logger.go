// Package logio provides the process logger: leveled lines written to an
// output stream, remembering whether any error was logged.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger writes "LEVEL: message" lines to an output stream.
type Logger struct {
	sync.Mutex
	output   io.WriteCloser
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream, closing any prior stream.
func (log *Logger) SetOutput(out io.WriteCloser) {
	log.Lock()
	defer log.Unlock()
	if log.output != nil {
		log.output.Close()
	}
	log.output = out
}

// ExitCode returns a code to pass to os.Exit: 1 after any Errorf, 2 after
// any output or ErrorIf error, 0 otherwise.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a printf-style function logging at the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Lock()
		defer log.Unlock()
		log.reportError(err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but also makes ExitCode non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf("ERROR", mess, args...)
	if log.exitCode == 0 {
		log.exitCode = 1
	}
}

// Printf prints a line like "level: message...\n"; an empty level omits the
// prefix. Any write error is itself logged, and reflected in ExitCode.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.reportError(err)
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}

func (log *Logger) reportError(err error) {
	log.printf("ERROR", "%+v", err)
	log.exitCode = 2
}
