package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/wordstack/internal/panicerr"
)

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	{
		var exclusive []vmTestCase
		for _, vmt := range vmts {
			if vmt.exclusive {
				exclusive = append(exclusive, vmt)
			}
		}
		if len(exclusive) > 0 {
			vmts = exclusive
		}
	}
	for _, vmt := range vmts {
		t.Run(vmt.name, vmt.run)
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type optFunc func(vm *VM)

func (f optFunc) apply(vm *VM) { f(vm) }

type vmTestCase struct {
	name    string
	opts    []interface{}
	ops     []string
	expect  []func(t *testing.T, vm *VM)
	timeout time.Duration
	wantErr string

	exclusive   bool
	nextInputID int
}

func (vmt vmTestCase) exclusiveTest() vmTestCase {
	vmt.exclusive = true
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	for _, opt := range opts {
		vmt.opts = append(vmt.opts, opt)
	}
	return vmt
}

func (vmt vmTestCase) withStack(values ...int64) vmTestCase {
	vmt.opts = append(vmt.opts, optFunc(func(vm *VM) {
		vm.stack = append(vm.stack, values...)
	}))
	return vmt
}

func (vmt vmTestCase) withWords(words ...Word) vmTestCase {
	vmt.opts = append(vmt.opts, WithWords(words...))
	return vmt
}

func (vmt vmTestCase) withInput(lines ...string) vmTestCase {
	input := strings.Join(lines, "\n") + "\n"
	vmt.opts = append(vmt.opts, func(vmt *vmTestCase, t *testing.T) VMOption {
		name := t.Name() + "/input"
		if id := vmt.nextInputID; id > 0 {
			name += "_" + strconv.Itoa(id+1)
		}
		vmt.nextInputID++
		return WithInput(namedReader{strings.NewReader(input), name})
	})
	return vmt
}

// do dispatches each token directly, reporting any error like Run does.
func (vmt vmTestCase) do(tokens ...string) vmTestCase {
	vmt.ops = append(vmt.ops, tokens...)
	return vmt
}

func (vmt vmTestCase) withTimeout(timeout time.Duration) vmTestCase {
	vmt.timeout = timeout
	return vmt
}

func (vmt vmTestCase) expectError(err string) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) expectStack(values ...int64) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		if values == nil {
			values = []int64{}
		}
		stack := vm.stack
		if stack == nil {
			stack = Stack{}
		}
		assert.Equal(t, Stack(values), stack, "expected stack values")
	})
	return vmt
}

func (vmt vmTestCase) expectOutput(lines ...string) vmTestCase {
	var out strings.Builder
	vmt.opts = append(vmt.opts, WithOutput(&out))
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		expected := ""
		if len(lines) > 0 {
			expected = strings.Join(lines, "\n") + "\n"
		}
		assert.Equal(t, expected, out.String(), "expected output")
	})
	return vmt
}

func (vmt vmTestCase) expectDump(names []string, lines ...string) vmTestCase {
	vmt.expect = append(vmt.expect, func(t *testing.T, vm *VM) {
		var out strings.Builder
		vmDumper{vm: vm, out: &out, words: names}.dump()
		assert.Equal(t, strings.Join(lines, "\n")+"\n", out.String(), "expected dump")
	})
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	const defaultTimeout = time.Second
	timeout := vmt.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	vm := vmt.buildVM(t)
	defer func() {
		if t.Failed() {
			vmt.dumpToTest(t, vm)
		}
	}()

	if err := vmt.runVM(ctx, vm); vmt.wantErr != "" {
		assert.EqualError(t, err, vmt.wantErr, "expected VM error")
	} else {
		assert.NoError(t, err, "unexpected VM run error")
	}

	if !t.Failed() {
		for _, expect := range vmt.expect {
			expect(t, vm)
		}
	}
}

func (vmt vmTestCase) runVM(ctx context.Context, vm *VM) (rerr error) {
	defer func() {
		if err := vm.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("vm.Close failed: %w", err)
		}
	}()

	if len(vmt.ops) == 0 {
		return vm.Run(ctx)
	}

	return panicerr.Recover("vmTestCase.ops", func() error {
		for i, token := range vmt.ops {
			vm.logf(">", "do[%v] %q", i, token)
			if err := vm.dispatch(token); err != nil {
				vm.report(err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		return vm.out.Flush()
	})
}

func (vmt vmTestCase) buildVM(t *testing.T) *VM {
	var opts []VMOption
	for _, o := range vmt.opts {
		switch impl := o.(type) {
		case func(vmt *vmTestCase, t *testing.T) VMOption:
			opts = append(opts, impl(&vmt, t))
		case VMOption:
			opts = append(opts, impl)
		default:
			t.Logf("unsupported vmTestCase opt type %T", o)
			t.FailNow()
		}
	}
	opts = append(opts, WithLogf(t.Logf))
	return New(opts...)
}

func (vmt vmTestCase) dumpToTest(t *testing.T, vm *VM) {
	var out strings.Builder
	vmDumper{vm: vm, out: &out, words: []string{}}.dump()
	t.Logf("%s", out.String())
}

//// utilities

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func builtinOp(name string) Operation {
	word, defined := Builtins().Get(name)
	if !defined {
		panic(fmt.Sprintf("no builtin word %q", name))
	}
	return word.Op
}

func underflow(depth int) string { return underflowError(depth).Error() }
