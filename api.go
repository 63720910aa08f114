package main

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"

	"github.com/jcorbin/wordstack/internal/panicerr"
)

// New creates a VM with every builtin word defined, and then applies any
// options. Input is read from any WithInput streams first, in order, and then
// from any WithPrompt terminal.
func New(opts ...VMOption) *VM {
	var vm VM
	vm.words = Builtins()
	vm.apply(opts...)
	lines := append(lineReaders{inputLines{&vm.Core}}, vm.lines...)
	vm.tokens.lines = &lines
	return &vm
}

// Run reads and dispatches tokens until an exit token, the end of input, or
// a fatal error. Unknown tokens and stack underflows are reported to output
// and do not stop the VM; faults such as division by zero do, and are
// returned as an error carrying the panic stack.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func WithInput(r io.Reader) VMOption            { return withInput(r) }
func WithPrompt(rl *readline.Instance) VMOption { return withPrompt(rl) }
func WithOutput(w io.Writer) VMOption           { return withOutput(w) }
func WithTee(w io.Writer) VMOption              { return withTee(w) }
func WithWords(words ...Word) VMOption          { return withWords(words...) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
