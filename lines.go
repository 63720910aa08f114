package main

import (
	"io"

	"github.com/chzyer/readline"
)

type lineReader interface {
	// ReadLine returns the next line without its terminator, or io.EOF once
	// there are no more lines.
	ReadLine() (string, error)
}

type locator interface {
	Location() string
}

// lineReaders reads from each lineReader in turn, moving on to the next once
// one returns io.EOF.
type lineReaders []lineReader

func (lrs *lineReaders) ReadLine() (string, error) {
	for len(*lrs) > 0 {
		line, err := (*lrs)[0].ReadLine()
		if err == io.EOF {
			*lrs = (*lrs)[1:]
			continue
		}
		return line, err
	}
	return "", io.EOF
}

func (lrs *lineReaders) Location() string {
	if len(*lrs) > 0 {
		if loc, ok := (*lrs)[0].(locator); ok {
			return loc.Location()
		}
	}
	return "?"
}

// inputLines adapts the core's queued input files.
type inputLines struct{ core *Core }

func (il inputLines) ReadLine() (string, error) { return il.core.Input.ReadLine() }
func (il inputLines) Location() string          { return il.core.Input.Last.Location.String() }

// promptLines reads lines interactively from a terminal. An interrupt
// discards the partial line, or ends input when the line was empty.
type promptLines struct{ *readline.Instance }

func (pl promptLines) ReadLine() (string, error) {
	for {
		line, err := pl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func (pl promptLines) Location() string { return "<prompt>" }
