package main

import (
	"io"

	"github.com/chzyer/readline"

	"github.com/jcorbin/wordstack/internal/flushio"
)

// VMOption customizes a VM under construction.
type VMOption interface{ apply(vm *VM) }

var defaults = []VMOption{
	withOutput(io.Discard),
}

func (vm *VM) apply(opts ...VMOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(vm)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type promptOption struct{ *readline.Instance }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type wordsOption []Word

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withPrompt(rl *readline.Instance) promptOption { return promptOption{rl} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withWords(words ...Word) wordsOption           { return wordsOption(words) }

func (i inputOption) apply(vm *VM) {
	vm.Input.Queue = append(vm.Input.Queue, i.Reader)
}

func (p promptOption) apply(vm *VM) {
	vm.lines = append(vm.lines, promptLines{p.Instance})
	vm.closers = append(vm.closers, p.Instance)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.Tee(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (words wordsOption) apply(vm *VM) {
	for _, word := range words {
		vm.words.Put(word)
	}
}
