package main

import (
	"bufio"
	"os"

	"github.com/kboyd/cflab/automata/dfa"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func runDFA(args []string) error {
	fs := pflag.NewFlagSet("dfa", pflag.ContinueOnError)
	tableFile := fs.StringP("table", "t", "", "DFA pipe-table file")
	input := fs.StringP("input", "i", "", "single string to check")
	batchFile := fs.StringP("batch", "b", "", "file of newline-separated strings to check, one Diagnose report per line")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*tableFile)
	if err != nil {
		return err
	}
	defer f.Close()
	d, err := dfa.Parse(f)
	if err != nil {
		return err
	}

	if *batchFile != "" {
		bf, err := os.Open(*batchFile)
		if err != nil {
			return err
		}
		defer bf.Close()
		scanner := bufio.NewScanner(bf)
		for scanner.Scan() {
			diag := d.Diagnose(scanner.Text())
			report(diag)
		}
		return scanner.Err()
	}

	report(d.Diagnose(*input))
	return nil
}

func report(diag dfa.Diagnosis) {
	if diag.Accepted {
		pterm.Success.Printfln("%q: %s", diag.Input, diag.Reason)
	} else {
		pterm.Error.Printfln("%q: %s", diag.Input, diag.Reason)
	}
}
