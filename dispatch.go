package main

// dispatch runs the word named by token, or else pushes token as a decimal
// integer. A token that is neither is returned as a badTokenError without
// touching the stack.
//
// The reserved "exit" token is handled by the caller and never reaches here.
func (vm *VM) dispatch(token string) error {
	vm.logf(">", "dispatch %q", token)
	if word, defined := vm.words.Get(token); defined {
		word.run(vm)
		return nil
	}
	val, err := vm.literal(token)
	if err != nil {
		return badTokenError(token)
	}
	vm.logf("+", "push %v", val)
	vm.push(val)
	return nil
}
