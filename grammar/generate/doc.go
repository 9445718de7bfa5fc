/*
Package generate implements a bounded-length enumerator of terminal
strings derivable from a grammar's start symbol, supporting leftmost or
rightmost expansion strategies and optional de-duplication.

Generate keeps an index from nonterminal to its right-hand sides, a
work queue of partial sentential forms awaiting expansion (seeded from
the start symbol), and a visited set that prevents re-enqueuing a form
that still contains a nonterminal and was already seen; all-terminal
forms are not checked against it, so a string reached by several
derivations is yielded once per derivation unless Dedup is set.
Enumeration terminates once the work queue empties, which is guaranteed
within Config.Max and is the generator's only termination anchor for
grammars whose derivation graph has non-shrinking cycles.
*/
package generate
