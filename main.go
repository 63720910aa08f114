package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/jcorbin/wordstack/internal/logio"
	"github.com/jcorbin/wordstack/internal/panicerr"
)

func main() {
	var log logio.Logger
	log.SetOutput(nopCloser{os.Stderr})
	defer func() { os.Exit(log.ExitCode()) }()

	var (
		configPath string
		timeout    time.Duration
		trace      bool
		prompt     string
		history    string
		noReadline bool
	)
	flag.StringVar(&configPath, "config", "", "load a TOML configuration file")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&prompt, "prompt", "", "interactive prompt (default \"> \")")
	flag.StringVar(&history, "history", "", "interactive history file")
	flag.BoolVar(&noReadline, "no-readline", false, "never use an interactive line editor")
	flag.Parse()

	var cfg Config
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			log.Errorf("%v", err)
			return
		}
	}
	cfg.override(flagOverrides{prompt: prompt, history: history, trace: trace})

	words, err := cfg.Words(Builtins())
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	var opts = []VMOption{
		WithOutput(os.Stdout),
		WithWords(words...),
	}
	if cfg.Trace {
		opts = append(opts,
			WithLogf(log.Leveledf("TRACE")),
			WithTee(&logio.Writer{Logf: log.Leveledf("OUT")}))
	}

	files, interactive := inputPlan(cfg.Prelude, flag.Args())
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithInput(f))
	}
	if interactive {
		if !noReadline && term.IsTerminal(int(os.Stdin.Fd())) {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          cfg.Prompt,
				HistoryFile:     cfg.HistoryFile,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				log.Errorf("%v", err)
				return
			}
			opts = append(opts, WithPrompt(rl))
		} else {
			opts = append(opts, WithInput(os.Stdin))
		}
	}

	vm := New(opts...)
	defer func() { log.ErrorIf(vm.Close()) }()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	logRunError(&log, vm.Run(ctx))
}

type flagOverrides struct {
	prompt  string
	history string
	trace   bool
}

// override applies any flags given on the command line over cfg's values.
func (cfg *Config) override(fl flagOverrides) {
	if fl.prompt != "" {
		cfg.Prompt = fl.prompt
	} else if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if fl.history != "" {
		cfg.HistoryFile = fl.history
	}
	cfg.Trace = cfg.Trace || fl.trace
}

// inputPlan returns the files to read, prelude first then args in order, and
// whether standard input follows them. Standard input is read when there are
// no args, or when any arg is "-"; either way it comes after every file.
func inputPlan(prelude, args []string) (files []string, interactive bool) {
	interactive = len(args) == 0
	for _, name := range append(prelude[:len(prelude):len(prelude)], args...) {
		if name == "-" {
			interactive = true
			continue
		}
		files = append(files, name)
	}
	return files, interactive
}

// logRunError logs a fatal VM error; a recovered panic has its stack logged
// separately, after the error line.
func logRunError(log *logio.Logger, err error) {
	switch {
	case err == nil:
	case panicerr.IsPanic(err):
		log.Errorf("%v", err)
		log.Printf("STACK", "%s", panicerr.PanicStack(err))
	case panicerr.IsExit(err):
		log.Errorf("VM goroutine exited early: %v", err)
	default:
		log.Errorf("%v", err)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
