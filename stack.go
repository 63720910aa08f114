package main

// Stack is the interpreter's single data stack of signed 64-bit integers.
// Values are only ever pushed to or popped from the tail; peek reads without
// mutating.
type Stack []int64

func (s *Stack) push(val int64) {
	*s = append(*s, val)
}

// pop removes and returns the top value; callers must have checked depth,
// an empty stack panics.
func (s *Stack) pop() (val int64) {
	i := len(*s) - 1
	val, *s = (*s)[i], (*s)[:i]
	return val
}

// peek returns the value k places below the top; peek(0) is the top.
func (s Stack) peek(k int) int64 {
	return s[len(s)-1-k]
}
