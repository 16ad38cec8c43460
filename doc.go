// Package dfgc lowers SSA-form IR into a RipTide-style dataflow graph
// (DFG) suitable for mapping onto a coarse-grained reconfigurable array.
//
// The pipeline has three stages, each its own package:
//
//	ir/       — the mutable SSA IR this module owns end to end
//	memtoken/ — the memory-ordering transform: rewrites loads and stores
//	            into token-producing/consuming intrinsic calls so the
//	            graph that follows needs no notion of a global store
//	dfgbuild/ — the builder: classifies every value, materializes the
//	            steering, merge, and carry operators that make control
//	            flow and loop-carried state explicit, and wires every
//	            data dependency (package resolver does the actual
//	            pass-through resolution the builder relies on)
//
// dfgraph holds the resulting graph's types; printer renders it as
// Graphviz DOT. Package pipeline is the thin facade that runs all three
// stages in order; package config loads a driver's YAML settings, and
// cmd/dfgc is the command-line entry point that reads a Go package with
// golang.org/x/tools/go/ssa (via package fromssa) and writes one DOT
// digraph per function into a single output file.
package dfgc
