package main

import (
	"os"

	"github.com/kboyd/cflab/automata/pda"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

func runPDA(args []string) error {
	fs := pflag.NewFlagSet("pda", pflag.ContinueOnError)
	rulebookFile := fs.StringP("rulebook", "r", "", "DPDA/DPDT YAML rulebook file")
	input := fs.StringP("input", "i", "", "string to run against the machine")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*rulebookFile)
	if err != nil {
		return err
	}
	defer f.Close()
	m, err := pda.Load(f)
	if err != nil {
		return err
	}

	res := m.Run(*input)
	switch {
	case res.Stuck:
		pterm.Warning.Printfln("stuck on %q: state %d, stack %q", *input, res.Configuration.State, string(res.Configuration.Stack))
	case res.Accepted:
		pterm.Success.Printfln("accepted: %q", *input)
	default:
		pterm.Error.Printfln("rejected: %q", *input)
	}
	if res.Translated != "" {
		pterm.Info.Printfln("translated: %q", res.Translated)
	}
	return nil
}
