package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/wordstack/internal/logio"
)

func Test_inputPlan(t *testing.T) {
	for _, tc := range []struct {
		name        string
		prelude     []string
		args        []string
		files       []string
		interactive bool
	}{
		{"nothing", nil, nil, nil, true},
		{"prelude only", []string{"p.ws"}, nil, []string{"p.ws"}, true},
		{"args", nil, []string{"a.ws", "b.ws"}, []string{"a.ws", "b.ws"}, false},
		{"prelude first", []string{"p.ws"}, []string{"a.ws"}, []string{"p.ws", "a.ws"}, false},
		{"stdin only", nil, []string{"-"}, nil, true},
		{"stdin first", nil, []string{"-", "a.ws"}, []string{"a.ws"}, true},
		{"stdin between", []string{"p.ws"}, []string{"a.ws", "-", "b.ws"}, []string{"p.ws", "a.ws", "b.ws"}, true},
		{"stdin in prelude", []string{"-"}, []string{"a.ws"}, []string{"a.ws"}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prelude := append([]string(nil), tc.prelude...)
			files, interactive := inputPlan(prelude, tc.args)
			assert.Equal(t, tc.files, files, "expected files")
			assert.Equal(t, tc.interactive, interactive, "expected interactive")
			assert.Equal(t, tc.prelude, prelude, "expected prelude untouched")
		})
	}
}

func Test_Config_override(t *testing.T) {
	for _, tc := range []struct {
		name   string
		cfg    Config
		flags  flagOverrides
		expect Config
	}{
		{"defaults", Config{}, flagOverrides{},
			Config{Prompt: defaultPrompt}},
		{"config kept", Config{Prompt: "ws> ", HistoryFile: "h", Trace: true}, flagOverrides{},
			Config{Prompt: "ws> ", HistoryFile: "h", Trace: true}},
		{"flags win", Config{Prompt: "ws> ", HistoryFile: "h"}, flagOverrides{prompt: "$ ", history: "f", trace: true},
			Config{Prompt: "$ ", HistoryFile: "f", Trace: true}},
		{"trace flag cannot disable", Config{Trace: true}, flagOverrides{},
			Config{Prompt: defaultPrompt, Trace: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			cfg.override(tc.flags)
			assert.Equal(t, tc.expect, cfg)
		})
	}
}

type logBuffer struct{ strings.Builder }

func (*logBuffer) Close() error { return nil }

func Test_logRunError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		var out logBuffer
		var log logio.Logger
		log.SetOutput(&out)
		logRunError(&log, nil)
		assert.Equal(t, 0, log.ExitCode())
		assert.Equal(t, "", out.String())
	})

	t.Run("error", func(t *testing.T) {
		var out logBuffer
		var log logio.Logger
		log.SetOutput(&out)
		logRunError(&log, errors.New("broken"))
		assert.Equal(t, 1, log.ExitCode())
		assert.Equal(t, "ERROR: broken\n", out.String())
	})

	t.Run("fault", func(t *testing.T) {
		vm := New(WithInput(strings.NewReader("0 1 div\n")))
		defer vm.Close()

		var out logBuffer
		var log logio.Logger
		log.SetOutput(&out)
		logRunError(&log, vm.Run(context.Background()))
		assert.Equal(t, 1, log.ExitCode())
		assert.True(t, strings.HasPrefix(out.String(),
			"ERROR: VM paniced: runtime error: integer divide by zero\nSTACK: "),
			"expected error then stack, got %q", out.String())
		assert.Contains(t, out.String(), "goroutine", "expected a goroutine stack trace")
	})
}
