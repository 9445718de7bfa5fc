/*
Cflab is a command-line workbench for context-free grammars: parsing
and rendering the textual grammar format, normalization (simplify,
Chomsky Normal Form, normal-form diagnosis), bounded derivation
generation, CYK and Earley recognition, and running DFA/DPDA/DPDT
automata specs.

Usage:

	cflab <subcommand> [flags]

Subcommands:

	parse     parse a grammar file and render it back
	simplify  print the simplified form of a grammar
	cnf       print the Chomsky Normal Form of a grammar
	generate  enumerate bounded-length strings from a grammar
	cyk       run the CYK recognizer against an input (requires CNF)
	earley    run the Earley recognizer against an input
	dfa       run a DFA table against one or more input lines
	pda       run a DPDA/DPDT YAML rulebook against an input

Run `cflab <subcommand> -h` for subcommand-specific flags.
*/
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if len(os.Args) < 2 {
		pterm.Error.Println("expected a subcommand")
		printUsage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "parse":
		err = runParse(args)
	case "simplify":
		err = runSimplify(args)
	case "cnf":
		err = runCNF(args)
	case "generate":
		err = runGenerate(args)
	case "cyk":
		err = runCYK(args)
	case "earley":
		err = runEarley(args)
	case "dfa":
		err = runDFA(args)
	case "pda":
		err = runPDA(args)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		pterm.Error.Printfln("unknown subcommand %q", sub)
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: cflab <parse|simplify|cnf|generate|cyk|earley|dfa|pda> [flags]")
}
