package main

import "github.com/jcorbin/wordstack/internal/unsafemem"

// guarded wraps effect so that it only runs when at least depth values are on
// the stack; otherwise an underflow is reported and the stack is left as is.
func guarded(depth int, effect func(vm *VM)) Primitive {
	return func(vm *VM) {
		if len(vm.stack) < depth {
			vm.report(underflowError(depth))
			return
		}
		effect(vm)
	}
}

// Binary operators pop arg1 then arg2 and compute "arg1 OP arg2": the value
// pushed last is the left hand operand, so "10 3 sub" leaves -7.

func binop(op func(arg1, arg2 int64) int64) Primitive {
	return guarded(2, func(vm *VM) {
		arg1 := vm.pop()
		arg2 := vm.pop()
		vm.push(op(arg1, arg2))
	})
}

func binopBool(op func(arg1, arg2 int64) bool) Primitive {
	return binop(func(arg1, arg2 int64) int64 { return boolInt(op(arg1, arg2)) })
}

func unop(op func(val int64) int64) Primitive {
	return guarded(1, func(vm *VM) { vm.push(op(vm.pop())) })
}

func unopBool(op func(val int64) bool) Primitive {
	return unop(func(val int64) int64 { return boolInt(op(val)) })
}

func builtinWords() []Word {
	return []Word{
		//// Stack Operations

		// Name    Depth  Function
		// peek    1      print the top of the stack
		// pop     1      remove the top of the stack and print it
		// drop    1      remove the top of the stack, printing it with an ok
		{"peek", guarded(1, func(vm *VM) { vm.printf("%v\n", vm.stack.peek(0)) })},
		{"pop", guarded(1, func(vm *VM) { vm.printf("%v\n", vm.pop()) })},
		{"drop", guarded(1, func(vm *VM) { vm.printf("%v, ok\n", vm.pop()) })},

		// dup     1      ( a -- a a )
		// dupnz   1      ( a -- a a ) only if a is non-zero
		// swap    2      ( a b -- b a )
		// over    2      ( a b -- a b a )
		// dup2    2      ( a b -- a b a b )
		// drop2   2      ( a b -- )
		{"dup", guarded(1, func(vm *VM) { vm.push(vm.stack.peek(0)) })},
		{"dupnz", guarded(1, func(vm *VM) {
			if top := vm.stack.peek(0); top != 0 {
				vm.push(top)
			}
		})},
		{"swap", guarded(2, func(vm *VM) {
			b, a := vm.pop(), vm.pop()
			vm.push(b)
			vm.push(a)
		})},
		{"over", guarded(2, func(vm *VM) { vm.push(vm.stack.peek(1)) })},
		{"dup2", guarded(2, func(vm *VM) {
			a, b := vm.stack.peek(1), vm.stack.peek(0)
			vm.push(a)
			vm.push(b)
		})},
		{"drop2", guarded(2, func(vm *VM) {
			vm.pop()
			vm.pop()
		})},

		// rot     3      ( a b c -- b c a )
		// revrot  3      ( a b c -- c a b )
		// swap2   4      ( a b c d -- c d a b )
		{"rot", guarded(3, func(vm *VM) {
			c, b, a := vm.pop(), vm.pop(), vm.pop()
			vm.push(b)
			vm.push(c)
			vm.push(a)
		})},
		{"revrot", guarded(3, func(vm *VM) {
			c, b, a := vm.pop(), vm.pop(), vm.pop()
			vm.push(c)
			vm.push(a)
			vm.push(b)
		})},
		{"swap2", guarded(4, func(vm *VM) {
			d, c, b, a := vm.pop(), vm.pop(), vm.pop(), vm.pop()
			vm.push(c)
			vm.push(d)
			vm.push(a)
			vm.push(b)
		})},

		//// Integer Operations

		// Division and modulo by zero are not caught: they panic like any
		// other Go integer division, which halts the interpreter.
		{"add", binop(func(arg1, arg2 int64) int64 { return arg1 + arg2 })},
		{"sub", binop(func(arg1, arg2 int64) int64 { return arg1 - arg2 })},
		{"mul", binop(func(arg1, arg2 int64) int64 { return arg1 * arg2 })},
		{"div", binop(func(arg1, arg2 int64) int64 { return arg1 / arg2 })},
		{"modu", binop(func(arg1, arg2 int64) int64 { return arg1 % arg2 })},
		{"and", binop(func(arg1, arg2 int64) int64 { return arg1 & arg2 })},
		{"or", binop(func(arg1, arg2 int64) int64 { return arg1 | arg2 })},
		{"xor", binop(func(arg1, arg2 int64) int64 { return arg1 ^ arg2 })},

		{"equals", binopBool(func(arg1, arg2 int64) bool { return arg1 == arg2 })},
		{"nequals", binopBool(func(arg1, arg2 int64) bool { return arg1 != arg2 })},
		{"gt", binopBool(func(arg1, arg2 int64) bool { return arg1 > arg2 })},
		{"gte", binopBool(func(arg1, arg2 int64) bool { return arg1 >= arg2 })},
		{"lt", binopBool(func(arg1, arg2 int64) bool { return arg1 < arg2 })},
		{"lte", binopBool(func(arg1, arg2 int64) bool { return arg1 <= arg2 })},

		{"inv", unop(func(val int64) int64 { return ^val })},
		{"neg", unop(func(val int64) int64 { return -val })},
		{"incr", unop(func(val int64) int64 { return val + 1 })},
		{"decr", unop(func(val int64) int64 { return val - 1 })},

		{"nez", unopBool(func(val int64) bool { return val != 0 })},
		{"ez", unopBool(func(val int64) bool { return val == 0 })},
		{"ltz", unopBool(func(val int64) bool { return val < 0 })},
		{"gtz", unopBool(func(val int64) bool { return val > 0 })},
		{"gtez", unopBool(func(val int64) bool { return val >= 0 })},
		{"ltez", unopBool(func(val int64) bool { return val <= 0 })},

		//// Memory Operations

		// UNCHECKED: these treat the top of the stack as a raw host address.
		// See package unsafemem; a bad address faults or corrupts memory.

		// Name    Depth  Function
		// store   2      ( val addr -- ) write 64-bit val at addr
		// load    1      ( addr -- val ) read 64-bit val from addr
		// cstore  2      ( val addr -- ) write the low byte of val at addr
		// cload   1      ( addr -- val ) read the signed byte at addr
		// ptrinc  2      ( val addr -- ) add val to the 64-bit cell at addr
		// ptrdec  2      ( val addr -- ) subtract val from the cell at addr
		{"store", guarded(2, func(vm *VM) {
			addr := vm.pop()
			unsafemem.Store64(addr, vm.pop())
		})},
		{"load", guarded(1, func(vm *VM) { vm.push(unsafemem.Load64(vm.pop())) })},
		{"cstore", guarded(2, func(vm *VM) {
			addr := vm.pop()
			unsafemem.Store8(addr, vm.pop())
		})},
		{"cload", guarded(1, func(vm *VM) { vm.push(unsafemem.Load8(vm.pop())) })},
		{"ptrinc", guarded(2, func(vm *VM) {
			addr := vm.pop()
			unsafemem.Add64(addr, vm.pop())
		})},
		{"ptrdec", guarded(2, func(vm *VM) {
			addr := vm.pop()
			unsafemem.Sub64(addr, vm.pop())
		})},
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
