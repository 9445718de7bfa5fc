/*
Package dfa loads and runs deterministic finite automata described in a
pipe-separated table format: an alphabet header row followed by one row
per state, each cell naming the state reached on the corresponding
alphabet character. A state name may be prefixed `>` (start) and/or `*`
(accepting); the literal name `-` denotes a sink/error state.
*/
package dfa
