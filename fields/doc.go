// Package fields provides the concrete field declarations: the primitive
// leaves (Char, Text, Boolean, Integer, Decimal, FilePath), the named-child
// composite (Object), the tagged wrapper (Typed) and the tagged-union list
// (OneOfArray).
//
// Declarations are assembled with chained builders and treated as immutable
// templates afterwards; call Clone on a declaration to obtain a fresh
// instance before loading data into it.
package fields
