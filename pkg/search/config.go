package search

import (
	"runtime"

	"github.com/hashicorp/go-multierror"
)

// SetExplorationParam sets the UCT constant C, clamped to be non-negative.
func (c *Config) SetExplorationParam(v float64) *Config {
	c.ExplorationParam = max(0, v)
	return c
}

// SetRaveB sets the RAVE decay constant b, clamped to be non-negative.
func (c *Config) SetRaveB(v float64) *Config {
	c.RaveB = max(0, v)
	return c
}

// SetSearchTime sets the per-move time budget in milliseconds. A value <= 0
// means unbounded.
func (c *Config) SetSearchTime(ms int) *Config {
	c.SearchTime = ms
	return c
}

// SetNumThreads sets the number of tree-parallel workers, clamped to at
// least 1.
func (c *Config) SetNumThreads(n int) *Config {
	c.NumThreads = max(1, n)
	return c
}

// NumThreadsOrDefault returns NumThreads if it's set to something sane,
// otherwise GOMAXPROCS.
func (c *Config) NumThreadsOrDefault() int {
	if c.NumThreads > 0 {
		return c.NumThreads
	}
	return runtime.GOMAXPROCS(0)
}

// Validate collects every configuration problem instead of stopping at the
// first one, since a config usually comes from several independently-set
// CLI flags and the user benefits from seeing all of them at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.ExplorationParam < 0 {
		result = multierror.Append(result, errConfig("exploration parameter must be non-negative"))
	}
	if c.RaveB < 0 {
		result = multierror.Append(result, errConfig("rave-b must be non-negative"))
	}
	if c.NumThreads < 0 {
		result = multierror.Append(result, errConfig("num-threads must be non-negative"))
	}
	if c.SearchTime < 0 {
		result = multierror.Append(result, errConfig("search-time must be non-negative"))
	}

	return result.ErrorOrNil()
}

type configError string

func (e configError) Error() string { return string(e) }

func errConfig(msg string) error { return configError(msg) }
