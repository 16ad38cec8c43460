package dfgbuild

import (
	"log"

	"github.com/riptide-dfg/dfgc/memtoken"
)

// BuildOption configures a single call to Build, following the functional-
// options shape used throughout this module's config surfaces.
type BuildOption func(*config)

// WithMemoryDependencyOrdering controls whether Phase F also adds explicit
// memory-dependency edges between loads and stores whose address operands
// share a type (not a proven same address), in addition to the token
// chain memtoken already threads through phis.
//
// Default is false: a conservative implementation adds no such edges and
// relies exclusively on the token chain, since alias analysis good enough
// to do this safely is out of scope here.
func WithMemoryDependencyOrdering(on bool) BuildOption {
	return func(c *config) { c.memoryDependencyOrdering = on }
}

// WithIntrinsicCache supplies the memtoken.Cache used to recognize
// load/store/entry-token intrinsic calls during Phase A classification.
// Callers that ran memtoken.Transform should pass the same cache they used
// there; Build falls back to a fresh, empty cache (which recognizes
// nothing) if this option is never given.
func WithIntrinsicCache(cache *memtoken.Cache) BuildOption {
	return func(c *config) { c.cache = cache }
}

// WithLogger sets the logger Build uses for its few diagnostic lines
// (currently just the Unknown-node sweep after Phase F). Defaults
// to log.Default().
func WithLogger(l *log.Logger) BuildOption {
	return func(c *config) { c.logger = l }
}
