/*
Package iteratable implements a small generic set type built for closure
and fixed-point computations. Set is the workhorse behind nullable-set
computation, unit closure, the generating/reachable set computations of
grammar/normalize, the Earley chart's per-column item sets, and the
generator's visited set.

Unusually, Set's iteration methods are destructive with respect to the
iteration cursor: IterateOnce resets it, Next advances it, and Item
reports the element the cursor currently sits on. This lets a caller run
an "until nothing changes" loop over a growing set: a pass over one
snapshot, then a fresh IterateOnce whenever that pass added elements,
as the Earley column fill does. Add and Union report whether the set
grew, which the other fixed-point computations use as their change flag.
*/
package iteratable
