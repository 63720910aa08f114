// Package unsafemem is the only place where stack values are treated as raw
// host memory addresses.
//
// DANGER: nothing here checks bounds, alignment, or whether the addressed
// memory is still live. An address that does not refer to memory owned by a
// Cell (or some other live Go allocation of sufficient size) is undefined
// behavior: the process may fault, or silently corrupt unrelated state.
// Callers must not add validation here; an interpreter that wants checked
// memory needs a different word family.
package unsafemem

import "unsafe"

// Cell is a heap allocated 64-bit memory cell with a stable address.
//
// The Go heap does not move objects, so the integer returned by Addr remains
// valid for as long as the Cell itself is reachable.
type Cell struct{ v *int64 }

// NewCell allocates a cell initialized to v.
func NewCell(v int64) Cell {
	p := new(int64)
	*p = v
	return Cell{p}
}

// Addr returns the cell's address as an integer; zero for the zero Cell.
func (c Cell) Addr() int64 {
	return int64(uintptr(unsafe.Pointer(c.v)))
}

// Value reads the cell's current contents.
func (c Cell) Value() int64 { return *c.v }

// The pointer checker enabled by -race and -d=checkptr rejects any integer to
// pointer conversion, even one naming a live Cell, so ptr64 and ptr8 opt out
// of it. See the DANGER note above: the address is trusted as is.

//go:nocheckptr
func ptr64(addr int64) *int64 { return (*int64)(unsafe.Pointer(uintptr(addr))) }

//go:nocheckptr
func ptr8(addr int64) *int8 { return (*int8)(unsafe.Pointer(uintptr(addr))) }

// Store64 writes val to the 64-bit cell at addr.
func Store64(addr, val int64) { *ptr64(addr) = val }

// Load64 reads the 64-bit cell at addr.
func Load64(addr int64) int64 { return *ptr64(addr) }

// Store8 writes the low 8 bits of val to the byte at addr.
func Store8(addr, val int64) { *ptr8(addr) = int8(val) }

// Load8 reads the byte at addr, sign extended.
func Load8(addr int64) int64 { return int64(*ptr8(addr)) }

// Add64 adds delta, in place, to the 64-bit cell at addr.
func Add64(addr, delta int64) { *ptr64(addr) += delta }

// Sub64 subtracts delta, in place, from the 64-bit cell at addr.
func Sub64(addr, delta int64) { *ptr64(addr) -= delta }
