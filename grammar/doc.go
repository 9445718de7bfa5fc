/*
Package grammar implements the canonical in-memory model of context-free
grammars used throughout cflab: symbols, productions, the grammar
container itself, and the textual parser/renderer for the rule format
described in the project's grammar-text syntax (one `L -> a1 | a2 | ...`
rule per line).

Grammars are immutable once constructed. Every transformation living in
sibling packages (grammar/normalize, grammar/generate, grammar/cyk,
grammar/earley) takes a *CFG and returns a fresh one; none of them mutate
their input.
*/
package grammar
