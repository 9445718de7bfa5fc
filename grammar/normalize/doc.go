/*
Package normalize implements the pure grammar transformations that
underpin every higher analysis in cflab: nullable-set computation,
epsilon-elimination, unit-elimination, uselessness and reachability
pruning, the composite Simplify (and its diagnostic-parity reverse
variant), start-symbol normalization, and Chomsky Normal Form
conversion.

Every transformation here takes a *grammar.CFG and returns a fresh one;
none mutate their input. A fresh start symbol always takes the lowest
subscript above the current start's that is unused for that base name,
checked against the grammar's current variable set at the moment of
introduction. The auxiliary variables of Chomsky conversion are instead
named after the rendered symbols they stand for.
*/
package normalize
