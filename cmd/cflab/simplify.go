package main

import (
	"fmt"

	"github.com/kboyd/cflab/grammar/normalize"
	"github.com/spf13/pflag"
)

func runSimplify(args []string) error {
	fs := pflag.NewFlagSet("simplify", pflag.ContinueOnError)
	grammarFile := fs.StringP("grammar", "g", "-", "grammar file to simplify, '-' for stdin")
	reverse := fs.Bool("reverse", false, "apply pruning after unit/epsilon removal instead of before")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := readGrammar(*grammarFile)
	if err != nil {
		return err
	}
	if *reverse {
		g = normalize.SimplifyReverse(g)
	} else {
		g = normalize.Simplify(g)
	}
	fmt.Println(g.Render())
	return nil
}
