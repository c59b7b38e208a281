// Package config turns a parsed CLI invocation into a validated solver
// configuration, following the "one Load function, one struct, distinct
// sentinel errors per invalid precondition" shape of the sudoku-api
// teacher's pkg/config/config.go (generalized from environment-variable
// JWT settings to flag-derived solver settings).
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors, one per violated precondition, matching the teacher's
// style of distinct errors.New values rather than a single generic one.
var (
	ErrMissingInput = errors.New("input file path is required (-f or -i/--input)")
	ErrBadWorkers   = errors.New("worker count hint must be >= 0")
)

// Config is the fully validated solver invocation.
type Config struct {
	// InputPath is the puzzle file to read (§6 input format).
	InputPath string
	// Workers bounds the parallel backtracker's fan-out at each branch
	// point (C7). A hint of 0 means "let the solver pick" and resolves to
	// runtime.GOMAXPROCS(0).
	Workers int
	// ListenAddr is the HTTP bind address for cmd/server; unused by cmd/sudoku.
	ListenAddr string
}

// Load validates the raw flag values collected by the CLI layer and
// resolves the worker-count hint into a concrete pool size.
func Load(inputPath string, workerHint int) (*Config, error) {
	if inputPath == "" {
		return nil, ErrMissingInput
	}
	if workerHint < 0 {
		return nil, ErrBadWorkers
	}

	workers := workerHint
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Config{
		InputPath: inputPath,
		Workers:   workers,
	}, nil
}

// LoadServer validates the HTTP service's configuration: a listen address
// and the same worker-count hint semantics as Load.
func LoadServer(listenAddr string, workerHint int) (*Config, error) {
	if workerHint < 0 {
		return nil, ErrBadWorkers
	}
	workers := workerHint
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if listenAddr == "" {
		listenAddr = ":8080"
	}
	return &Config{
		ListenAddr: listenAddr,
		Workers:    workers,
	}, nil
}

// String renders the config for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("input=%q workers=%d listen=%q", c.InputPath, c.Workers, c.ListenAddr)
}
