/*
Package pda loads and runs deterministic pushdown automata/transducers
from a YAML rulebook. A Machine steps a Configuration character by
character, following epsilon-moves (rules with a nil Character) before
and after every consumed symbol; when no rule applies the machine
reports Stuck rather than failing, per the "recognizable rejection, not
an exception" policy the rest of this module follows.

DPDA and DPDT share the same stepping engine; a DPDT rule additionally
carries a Translated string that is appended to the running output as
the rule fires.
*/
package pda
