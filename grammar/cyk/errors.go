package cyk

import "errors"

// ErrNotChomskyNormalForm is returned when Accepts or Parse is given a
// grammar that is not in Chomsky Normal Form; run normalize.Chomsky on
// the grammar first.
var ErrNotChomskyNormalForm = errors.New("cyk: grammar is not in Chomsky Normal Form")
