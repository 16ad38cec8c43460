// Package reach computes block reachability from a function's entry
// block via breadth-first search over the CFG's successor edges.
//
// The memory-ordering transform only inserts a memory-token phi at the
// head of blocks reachable from entry; package reach is the one place
// that walk lives, using an explicit queue and visited set rather than
// recursion.
package reach
