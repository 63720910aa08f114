package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	// words, when non-nil, limits which words get dumped
	words []string
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.vm.stack)
	dump.dumpWords()
}

func (dump vmDumper) dumpWords() {
	names := dump.words
	if names == nil {
		names = make([]string, 0, len(dump.vm.words))
		for name := range dump.vm.words {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var buf strings.Builder
	for _, name := range names {
		word, defined := dump.vm.words.Get(name)
		if !defined {
			continue
		}
		buf.Reset()
		fmt.Fprintf(&buf, "  : %-*v ", width, name)
		formatOp(&buf, word.Op)
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
	}
}

func formatOp(buf *strings.Builder, op Operation) {
	switch impl := op.(type) {
	case Primitive:
		buf.WriteString("primitive")
	case Create:
		fmt.Fprintf(buf, "create @%#x = %v", impl.Addr(), impl.cell.Value())
	case Composite:
		buf.WriteByte('[')
		for i, sub := range impl {
			if i > 0 {
				buf.WriteByte(' ')
			}
			formatOp(buf, sub)
		}
		buf.WriteByte(']')
	default:
		fmt.Fprintf(buf, "%T", op)
	}
}
