package pipeline

import (
	"fmt"
	"io"

	"github.com/riptide-dfg/dfgc/dfgbuild"
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/memtoken"
	"github.com/riptide-dfg/dfgc/printer"
)

// Option configures one Lower call, mirroring the BuildOption shape one
// level up: a functional option wrapping dfgbuild's own options plus the
// one thing the pipeline owns that dfgbuild doesn't — whether to run the
// memory-ordering transform at all.
type Option func(*settings)

type settings struct {
	skipMemoryOrdering bool
	buildOpts          []dfgbuild.BuildOption
}

// WithMemoryDependencyOrdering forwards to dfgbuild.WithMemoryDependencyOrdering.
func WithMemoryDependencyOrdering(on bool) Option {
	return func(s *settings) { s.buildOpts = append(s.buildOpts, dfgbuild.WithMemoryDependencyOrdering(on)) }
}

// SkipMemoryOrdering disables the memtoken.Transform step, for callers
// that have already run it themselves. Without the transform no
// entry-token call or token phis are inserted, even in a function with no
// memory operations.
func SkipMemoryOrdering() Option {
	return func(s *settings) { s.skipMemoryOrdering = true }
}

// Lower runs the full pipeline for one function: memtoken.Transform
// unless skipped, then dfgbuild.Build, returning the finished graph.
func Lower(fn *ir.Function, opts ...Option) (*dfgraph.Graph, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	cache := memtoken.NewCache()
	if !s.skipMemoryOrdering {
		if err := memtoken.Transform(cache, fn); err != nil {
			return nil, fmt.Errorf("pipeline: memory-ordering transform: %w", err)
		}
	}

	buildOpts := append([]dfgbuild.BuildOption{dfgbuild.WithIntrinsicCache(cache)}, s.buildOpts...)
	g, err := dfgbuild.Build(fn, buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build: %w", err)
	}
	return g, nil
}

// LowerModule runs Lower over every non-declaration function in mod, in
// mod.Functions order, sharing nothing between calls — each function gets
// its own memtoken.Cache and its own Graph; the builder is single-
// threaded per function.
func LowerModule(mod *ir.Module, opts ...Option) (map[string]*dfgraph.Graph, error) {
	out := make(map[string]*dfgraph.Graph, len(mod.Functions))
	for _, fn := range mod.Functions {
		if fn.Declaration {
			continue
		}
		g, err := Lower(fn, opts...)
		if err != nil {
			return nil, fmt.Errorf("pipeline: function %s: %w", fn.Name, err)
		}
		out[fn.Name] = g
	}
	return out, nil
}

// WriteDOT renders g to w using the function's name as the digraph's name.
func WriteDOT(w io.Writer, name string, g *dfgraph.Graph) error {
	return printer.Write(w, g, name)
}
