package main

import (
	"context"
	"fmt"
	"strconv"
)

// VM is a stack-word interpreter: a data stack, a table of words, and a
// tokenizer feeding it.
type VM struct {
	Core

	stack  Stack
	words  WordTable
	tokens Tokenizer
	lines  []lineReader
}

func (vm *VM) push(val int64) { vm.stack.push(val) }
func (vm *VM) pop() int64     { return vm.stack.pop() }

func (vm *VM) literal(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

// nextToken returns the next input token, flushing output before any line
// read so that prompts follow prior results. Halts at end of input.
func (vm *VM) nextToken() string {
	if !vm.tokens.buffered() {
		vm.haltif(vm.out.Flush())
	}
	token, err := vm.tokens.next()
	vm.haltif(err)
	return token
}

func (vm *VM) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		token := vm.nextToken()
		switch token {
		case "":
			continue
		case "exit":
			vm.logf("#", "exit @%v", vm.tokens.location())
			vm.halt(nil)
		}
		if err := vm.dispatch(token); err != nil {
			vm.report(err)
		}
	}
}

type underflowError int
type badTokenError string

func (depth underflowError) Error() string {
	return fmt.Sprintf("Underflow, expected %v items on the stack", int(depth))
}
func (token badTokenError) Error() string { return fmt.Sprintf("Bad integer %v", string(token)) }
