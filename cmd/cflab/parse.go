package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

func runParse(args []string) error {
	fs := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	grammarFile := fs.StringP("grammar", "g", "-", "grammar file to parse, '-' for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := readGrammar(*grammarFile)
	if err != nil {
		return err
	}
	fmt.Println(g.Render())
	return nil
}
