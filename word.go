package main

import "github.com/jcorbin/wordstack/internal/unsafemem"

// Word is a named operation; the unit of dispatch.
type Word struct {
	Name string
	Op   Operation
}

func (word *Word) run(vm *VM) {
	vm.logf(">", "run %v -- s:%v", word.Name, vm.stack)
	if _, isComp := word.Op.(Composite); isComp && vm.logfn != nil {
		defer vm.withLogPrefix("\t")()
	}
	word.Op.do(vm)
}

// Operation is one of Primitive, Composite, or Create.
type Operation interface {
	do(vm *VM)
}

// Primitive is a built-in operation implemented directly in Go.
type Primitive func(vm *VM)

// Composite runs each of its operations in order against the same stack.
// There is no rollback: an operation that reports a failure leaves whatever
// the earlier ones did in place, and later ones still run.
type Composite []Operation

// Create names a memory cell; running it pushes the cell's address, which
// the load and store words may then dereference.
type Create struct {
	cell unsafemem.Cell
}

// NewCreate allocates a cell holding val.
func NewCreate(val int64) Create {
	return Create{unsafemem.NewCell(val)}
}

// Addr returns the address that running cr pushes.
func (cr Create) Addr() int64 { return cr.cell.Addr() }

func (prim Primitive) do(vm *VM) { prim(vm) }

func (comp Composite) do(vm *VM) {
	for _, op := range comp {
		op.do(vm)
	}
}

func (cr Create) do(vm *VM) { vm.push(cr.cell.Addr()) }
