package dfgbuild

import (
	"log"

	"github.com/riptide-dfg/dfgc/memtoken"
)

// config holds the resolved options for one Build call.
type config struct {
	memoryDependencyOrdering bool
	cache                    *memtoken.Cache
	logger                   *log.Logger
}

func defaultConfig() *config {
	return &config{
		memoryDependencyOrdering: false,
		cache:                    memtoken.NewCache(),
		logger:                   log.Default(),
	}
}

func resolveConfig(opts []BuildOption) *config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}
