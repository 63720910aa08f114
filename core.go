package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/wordstack/internal/fileinput"
	"github.com/jcorbin/wordstack/internal/flushio"
)

// Core holds the interpreter's I/O and logging state.
type Core struct {
	logging
	fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close closes any resources acquired through options, most recent first.
func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	return err
}

func (core *Core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		if err == nil {
			core.logf("#", "halt")
		} else {
			core.logf("#", "halt error: %v", err)
		}
	}()

	panic(haltError{err})
}

func (core *Core) haltif(err error) {
	if err != nil {
		core.halt(err)
	}
}

func (core *Core) printf(mess string, args ...interface{}) {
	_, err := fmt.Fprintf(core.out, mess, args...)
	core.haltif(err)
}

// report prints a recoverable error as a line of output.
func (core *Core) report(err error) {
	core.logf("!", "%v", err)
	core.printf("%v\n", err)
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
