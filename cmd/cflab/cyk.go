package main

import (
	"github.com/kboyd/cflab/grammar/cyk"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func runCYK(args []string) error {
	fs := pflag.NewFlagSet("cyk", pflag.ContinueOnError)
	grammarFile := fs.StringP("grammar", "g", "-", "CNF grammar file, '-' for stdin")
	input := fs.StringP("input", "i", "", "string to recognize")
	showPath := fs.Bool("tree", false, "print a witnessing parse's production sequence on acceptance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := readGrammar(*grammarFile)
	if err != nil {
		return err
	}

	if *showPath {
		ok, path, err := cyk.Parse(g, *input)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Error.Printfln("rejected: %q", *input)
			return nil
		}
		pterm.Success.Printfln("accepted: %q", *input)
		for _, p := range path {
			pterm.Println(p.String())
		}
		return nil
	}

	ok, err := cyk.Accepts(g, *input)
	if err != nil {
		return err
	}
	if ok {
		pterm.Success.Printfln("accepted: %q", *input)
	} else {
		pterm.Error.Printfln("rejected: %q", *input)
	}
	return nil
}
