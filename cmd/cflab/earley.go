package main

import (
	"github.com/kboyd/cflab/grammar/earley"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func runEarley(args []string) error {
	fs := pflag.NewFlagSet("earley", pflag.ContinueOnError)
	grammarFile := fs.StringP("grammar", "g", "-", "grammar file, '-' for stdin")
	input := fs.StringP("input", "i", "", "string to recognize")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := readGrammar(*grammarFile)
	if err != nil {
		return err
	}

	if earley.Accepts(g, *input) {
		pterm.Success.Printfln("accepted: %q", *input)
	} else {
		pterm.Error.Printfln("rejected: %q", *input)
	}
	return nil
}
