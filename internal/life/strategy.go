package life

import (
	"runtime"
	"sort"

	"github.com/pkg/errors"
)

// Strategy computes one full generation into dst from src. Implementations
// may split the work across goroutines but must leave dst fully written and
// src untouched when they return.
type Strategy interface {
	Name() string
	Step(dst, src []uint8, w, h int) error
}

// Factory builds a strategy with the given worker budget; zero means pick a
// sensible default.
type Factory func(workers int) Strategy

var strategies = map[string]Factory{}

// Register makes a strategy factory available to Pick under the given name.
func Register(name string, f Factory) {
	strategies[name] = f
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pick resolves a strategy by name. The empty string and "auto" choose
// workers on multicore hosts and serial otherwise.
func Pick(name string, workers int) (Strategy, error) {
	if name == "" || name == "auto" {
		if runtime.NumCPU() > 1 {
			name = "workers"
		} else {
			name = "serial"
		}
	}
	f, ok := strategies[name]
	if !ok {
		return nil, errors.Errorf("unknown strategy %q (have %v)", name, Names())
	}
	return f(workers), nil
}

func init() {
	Register("serial", func(int) Strategy { return Serial{} })
	Register("workers", func(n int) Strategy { return NewWorkers(n) })
}

// Serial steps the whole grid on the calling goroutine.
type Serial struct{}

// Name identifies the strategy in snapshots and CLI output.
func (Serial) Name() string { return "serial" }

// Step computes the next generation row by row.
func (Serial) Step(dst, src []uint8, w, h int) error {
	stepRows(dst, src, w, h, 0, h)
	return nil
}
