// Package loopinfo derives natural-loop structure (header, latch, the
// exiting block, the preheader, and loop membership) from an ir.Function,
// for the DFG builder's phi phase to decide Merge vs. Carry and to find
// the loop-exit decider.
//
// The approach is the textbook one: compute each block's immediate
// dominator with the iterative Cooper/Harvey/Kennedy dataflow algorithm
// (no need for Lengauer-Tarjan's asymptotics at function-sized graphs),
// find back edges (an edge n→h where h dominates n), and grow each back
// edge's natural loop body by walking predecessors backward from the
// latch until the header is reached.
//
// Irreducible control flow (a loop with more than one entry block) is out
// of scope, matching the input IR's natural-loops-with-a-single-header
// contract; Find does not attempt to detect or reject it beyond what
// naturally falls out of only ever growing a body from back edges.
package loopinfo
