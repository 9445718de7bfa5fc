/*
Package cyk implements the Cocke-Younger-Kasami recognition algorithm
and parse-tree reconstruction over grammars already in Chomsky Normal
Form. Accepts and Parse both reject grammars that are not in CNF rather
than silently producing a meaningless table.
*/
package cyk
