// Package config loads the YAML driver configuration for a dfgc run: the
// module-wide options that don't belong on a per-call BuildOption, such as
// the output path and whether memory-dependency edges are enabled by
// default for every function in a run.
package config
