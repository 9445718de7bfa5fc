/*
Package earley implements chart-based Earley parsing directly over any
context-free grammar, without requiring Chomsky Normal Form. A chart is
an array of n+1 columns; each column holds a growing set of (production,
dot, origin) states filled to quiescence by predict, scan and complete.

Derivation-path recovery from the completed chart is not implemented
for any grammar: RecoverDerivation always reports false, and Accepts
reports only acceptance.
*/
package earley
