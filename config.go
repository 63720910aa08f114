package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration file, e.g.:
//
//	prompt = "> "
//	history_file = "/tmp/wordstack.history"
//	prelude = ["lib/setup.ws"]
//
//	[constants]
//	answer = 42
//
//	[macros]
//	square = ["dup", "mul"]
//	cube = ["dup", "square", "mul"]
//
// Constants become Create words naming a memory cell holding the value.
// Macros become Composite words running the named words in order; a macro
// may name builtins, constants, or other macros, but not literals.
type Config struct {
	Prompt      string              `toml:"prompt"`
	HistoryFile string              `toml:"history_file"`
	Trace       bool                `toml:"trace"`
	Prelude     []string            `toml:"prelude"`
	Constants   map[string]int64    `toml:"constants"`
	Macros      map[string][]string `toml:"macros"`
}

const defaultPrompt = "> "

// LoadConfig reads a TOML configuration file; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cannot load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("unknown keys in config %s: %v", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Words builds the configured constant and macro words. Macro components are
// resolved against the configured words first, then against base.
func (cfg Config) Words(base WordTable) ([]Word, error) {
	// input is lowercased before dispatch, so names are too
	macros := make(map[string][]string, len(cfg.Macros))
	for name, body := range cfg.Macros {
		macros[strings.ToLower(name)] = body
	}
	defined := make(WordTable, len(cfg.Constants)+len(cfg.Macros))
	for name, val := range cfg.Constants {
		name = strings.ToLower(name)
		if _, dup := macros[name]; dup {
			return nil, fmt.Errorf("%q is both a constant and a macro", name)
		}
		defined.Put(Word{name, NewCreate(val)})
	}

	resolving := make(map[string]bool)
	var resolve func(name string) (Operation, error)
	resolve = func(name string) (Operation, error) {
		if word, ok := defined.Get(name); ok {
			return word.Op, nil
		}
		body, isMacro := macros[name]
		if !isMacro {
			if word, ok := base.Get(name); ok {
				return word.Op, nil
			}
			return nil, fmt.Errorf("undefined word %q", name)
		}
		if resolving[name] {
			return nil, fmt.Errorf("macro %q is recursive", name)
		}
		resolving[name] = true
		defer delete(resolving, name)

		comp := make(Composite, 0, len(body))
		for _, part := range body {
			op, err := resolve(strings.ToLower(part))
			if err != nil {
				return nil, fmt.Errorf("macro %q: %w", name, err)
			}
			comp = append(comp, op)
		}
		defined.Put(Word{name, comp})
		return comp, nil
	}

	for name := range macros {
		if _, err := resolve(name); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(defined))
	for name := range defined {
		names = append(names, name)
	}
	sort.Strings(names)
	words := make([]Word, len(names))
	for i, name := range names {
		words[i] = *defined[name]
	}
	return words, nil
}
