// Package health checks the consistency of an installation: the state
// record against the command files actually on disk. It backs the
// 'notekit status' command and never modifies anything.
package health

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/raveheart1/notekit/internal/fsys"
	"github.com/raveheart1/notekit/internal/state"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// Checker verifies an installation.
type Checker struct {
	FS             fsys.FS
	Store          *state.Store
	CommandsDir    string
	CatalogVersion string
	// FilePath maps a command name to its installed path.
	FilePath func(name string) string
}

// Run performs all checks. Per-command file verification runs concurrently;
// results keep the state record's command order.
func (c *Checker) Run() *Report {
	report := &Report{Passed: true}
	add := func(r CheckResult) {
		report.Checks = append(report.Checks, r)
		if !r.Passed {
			report.Passed = false
		}
	}

	st := c.Store.Load()
	if st == nil {
		add(CheckResult{
			Name:    "state record",
			Message: "not initialized; run 'notekit init'",
		})
		return report
	}
	if !st.IsValid() {
		add(CheckResult{
			Name:    "state record",
			Message: "state record is corrupted; run 'notekit init' to repair",
		})
		return report
	}
	add(CheckResult{
		Name:    "state record",
		Passed:  true,
		Message: fmt.Sprintf("valid, %d commands recorded", len(st.Commands)),
	})

	if state.NeedsUpdate(st.Version, c.CatalogVersion) {
		add(CheckResult{
			Name:    "catalog version",
			Message: fmt.Sprintf("update available: %s -> %s (run 'notekit init --force')", st.Version, c.CatalogVersion),
		})
	} else {
		add(CheckResult{
			Name:    "catalog version",
			Passed:  true,
			Message: fmt.Sprintf("current (%s)", st.Version),
		})
	}

	results := make([]CheckResult, len(st.Commands))
	var g errgroup.Group
	var mu sync.Mutex
	for i, rec := range st.Commands {
		g.Go(func() error {
			res := c.checkCommandFile(rec.Name)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; failures land in their CheckResult.
	_ = g.Wait()

	for _, res := range results {
		add(res)
	}
	return report
}

func (c *Checker) checkCommandFile(name string) CheckResult {
	path := c.FilePath(name)
	check := CheckResult{Name: "command " + name}

	data, err := c.FS.ReadFile(path)
	switch {
	case err != nil:
		check.Message = fmt.Sprintf("missing file %s", path)
	case len(data) == 0:
		check.Message = fmt.Sprintf("empty file %s", path)
	default:
		check.Passed = true
		check.Message = path
	}
	return check
}
