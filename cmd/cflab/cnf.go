package main

import (
	"fmt"

	"github.com/kboyd/cflab/grammar/normalize"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func runCNF(args []string) error {
	fs := pflag.NewFlagSet("cnf", pflag.ContinueOnError)
	grammarFile := fs.StringP("grammar", "g", "-", "grammar file to convert, '-' for stdin")
	diagnose := fs.Bool("diagnose", false, "report which normal-form stage the input grammar already fails, instead of converting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := readGrammar(*grammarFile)
	if err != nil {
		return err
	}

	if *diagnose {
		if d := normalize.IsNormalForm(g); d != nil {
			pterm.Warning.Printfln("not in normal form: %s", *d)
		} else {
			pterm.Success.Println("already in normal form")
		}
		return nil
	}

	fmt.Println(normalize.Chomsky(g).Render())
	return nil
}
