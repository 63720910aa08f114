/* Package main: wordstack -- a tiny stack-word interpreter

Input is read a line at a time, lowercased, and split on single spaces into
tokens. Each token is either the name of a word, which runs against the one
shared stack of 64-bit integers, or else a decimal integer, which is pushed.
Anything else is reported as a bad integer, and the interpreter carries on.
The token "exit", or the end of input, stops it.

	> 3 4 add peek
	7
	> 10 3 sub pop
	-7
	> drop
	7, ok
	> drop
	Underflow, expected 1 items on the stack
	> 5 store
	Underflow, expected 2 items on the stack

Words come in three kinds:

  - primitives are built in Go; each declares how many stack items it needs,
    and reports an underflow rather than running when there are too few
  - composites run a sequence of other operations in order
  - creates push the address of a named memory cell

Binary words pop their first argument, then their second, and compute
"first OP second": the item pushed last is the left hand operand.

The memory words (store, load, cstore, cload, ptrinc, ptrdec) treat a stack
value as a raw host address, with no checking at all. The address is popped
first; store, cstore, ptrinc, and ptrdec then pop a value too, so they need
two stack items where load and cload need one. Addresses pushed by
create words are safe to use; any other address may crash the process or
silently corrupt it.

There is no syntax for defining words from input. Composites and creates are
defined in the configuration file given with -config:

	[constants]
	answer = 42

	[macros]
	square = ["dup", "mul"]

With that, "answer load square peek" prints 1764.

Input comes from the configured prelude files, then each file argument in
order, then standard input. Standard input is read when there are no file
arguments, or when one of them is "-"; it is always read last, wherever the
"-" appears. Flags given on the command line override the configuration file.

*/
package main
