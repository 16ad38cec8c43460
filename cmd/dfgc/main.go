// Command dfgc lowers SSA IR into RipTide-style dataflow graphs and
// writes one DOT digraph per function, all into the single output file
// named by the configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/riptide-dfg/dfgc/config"
	"github.com/riptide-dfg/dfgc/fromssa"
	"github.com/riptide-dfg/dfgc/pipeline"
	"github.com/riptide-dfg/dfgc/printer"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a driver config YAML file")
		pkgPattern = flag.String("pkg", "", "Go package pattern to load and lower (e.g. ./...)")
		verbose    = flag.Bool("v", false, "print a per-function operator summary")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	if *pkgPattern == "" {
		log.Fatal("dfgc: -pkg is required")
	}

	if err := run(cfg, *pkgPattern, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, pattern string, verbose bool) error {
	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax}, pattern)
	if err != nil {
		return fmt.Errorf("dfgc: load packages: %w", err)
	}

	prog, ssaPkgs := ssautil.AllPackages(pkgs, ssa.SanityCheckFunctions)
	prog.Build()

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("dfgc: create %s: %w", cfg.Output, err)
	}
	defer out.Close()

	for _, pkg := range ssaPkgs {
		if pkg == nil {
			continue
		}
		for _, member := range pkg.Members {
			fn, ok := member.(*ssa.Function)
			if !ok || fn.Blocks == nil {
				continue
			}
			if cfg.EntryPoint != "" && fn.Name() != cfg.EntryPoint {
				continue
			}

			irFn, err := fromssa.Translate(fn)
			if err != nil {
				return fmt.Errorf("dfgc: translate %s: %w", fn.Name(), err)
			}

			var opts []pipeline.Option
			if cfg.MemoryDependencyOrdering {
				opts = append(opts, pipeline.WithMemoryDependencyOrdering(true))
			}
			g, err := pipeline.Lower(irFn, opts...)
			if err != nil {
				return fmt.Errorf("dfgc: lower %s: %w", fn.Name(), err)
			}

			if err := pipeline.WriteDOT(out, fn.Name(), g); err != nil {
				return fmt.Errorf("dfgc: write %s: %w", fn.Name(), err)
			}
			if verbose {
				for _, line := range printer.Summary(g) {
					fmt.Fprintf(os.Stderr, "%s: %s\n", fn.Name(), line)
				}
			}
		}
	}
	return nil
}
