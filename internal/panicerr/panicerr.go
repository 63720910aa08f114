// Package panicerr turns panics, and runtime.Goexit calls, into errors.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, waiting for it to finish. A panic or a
// runtime.Goexit in f becomes an error return, named after name.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			select {
			case errch <- exitError(name):
			default:
				// the normal and panic paths have already sent
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				errch <- panicError{name, e, debug.Stack()}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// IsExit returns true if err indicates a recovered runtime.Goexit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// PanicStack returns the stack trace captured with a recovered panic, or ""
// if err is not one.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string { return fmt.Sprint(pe) }

// Format supports "%+v" to include the panic's stack trace.
func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}
