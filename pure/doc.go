// Package pure provides memo tables for pure functions over unsigned
// integer arguments.
//
// A Table maps a path of uint32 keys to a value. Three flavors exist:
//   - NewTrie(0): unbounded, entries live as long as the table.
//   - NewTrie(n): generation-bounded, at most two generations of n entries.
//   - NewRistrettoTable: cost-bounded with TinyLFU admission.
//
// TableizeI3O2 wraps a pure function of three arguments with a Table.
//
// WARNING: Do not tableize impure functions (e.g., those depending on time, I/O, etc).
package pure
