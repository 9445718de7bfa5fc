package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kboyd/cflab/grammar"
)

// readGrammar loads grammar text from path, or from stdin if path is
// "" or "-".
func readGrammar(path string) (*grammar.CFG, error) {
	text, err := readAll(path)
	if err != nil {
		return nil, err
	}
	return grammar.Parse(text)
}

func readAll(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}
