package main

import (
	"io"
	"strings"
)

// Tokenizer splits lines of input into tokens. Each line is lowercased and
// split on single spaces, so runs of spaces produce empty tokens.
type Tokenizer struct {
	lines  lineReader
	buffer []string
	index  int
}

func (tok *Tokenizer) buffered() bool { return tok.index < len(tok.buffer) }

// next returns the next token, reading another line once the current one is
// used up. Returns io.EOF once no input remains.
func (tok *Tokenizer) next() (string, error) {
	for !tok.buffered() {
		if tok.lines == nil {
			return "", io.EOF
		}
		line, err := tok.lines.ReadLine()
		if err != nil {
			return "", err
		}
		tok.buffer = strings.Split(strings.ToLower(line), " ")
		tok.index = 0
	}
	token := tok.buffer[tok.index]
	tok.index++
	return token, nil
}

func (tok *Tokenizer) location() string {
	if loc, ok := tok.lines.(locator); ok {
		return loc.Location()
	}
	return "?"
}
