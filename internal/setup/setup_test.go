package setup

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/notekit/internal/catalog"
	apperrors "github.com/raveheart1/notekit/internal/errors"
	"github.com/raveheart1/notekit/internal/fsys"
	"github.com/raveheart1/notekit/internal/retry"
	"github.com/raveheart1/notekit/internal/state"
)

func testCatalog() []catalog.Definition {
	return []catalog.Definition{
		{Name: "daily-note", Description: "Create today's note", Template: "Do it.\n", Agent: catalog.AgentGeneral},
		{Name: "weekly-review", Description: "Review the week", Template: "Review.\n", Agent: catalog.AgentPlan},
	}
}

// recorder captures reporter calls without touching process streams.
type recorder struct {
	successes []string
	noops     []string
	failures  []*apperrors.CLIError
	commands  [][]string
}

func (r *recorder) Success(msg string, commands []string) {
	r.successes = append(r.successes, msg)
	r.commands = append(r.commands, commands)
}
func (r *recorder) Noop(msg string, commands []string) {
	r.noops = append(r.noops, msg)
	r.commands = append(r.commands, commands)
}
func (r *recorder) Failure(err *apperrors.CLIError) { r.failures = append(r.failures, err) }
func (r *recorder) StartProgress(string)            {}
func (r *recorder) StopProgress()                   {}

type fixture struct {
	controller *Controller
	reporter   *recorder
	paths      Paths
	store      *state.Store
	slept      *[]time.Duration
}

func newFixture(t *testing.T, fs fsys.FS) *fixture {
	t.Helper()
	paths := NewPaths(t.TempDir(), ".opencode")
	rec := &recorder{}
	slept := &[]time.Duration{}

	policy := retry.New(apperrors.IsRetryable)
	policy.Sleep = func(d time.Duration) { *slept = append(*slept, d) }

	now := time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)
	ctrl := New(Options{
		FS:       fs,
		Paths:    paths,
		Catalog:  testCatalog(),
		Version:  "1.0.0",
		Reporter: rec,
		Policy:   &policy,
		Now:      func() time.Time { return now },
	})

	return &fixture{
		controller: ctrl,
		reporter:   rec,
		paths:      paths,
		store:      state.NewStore(fsys.OS(), paths.StateFile),
		slept:      slept,
	}
}

func TestRun_FreshInstall(t *testing.T) {
	f := newFixture(t, fsys.OS())

	require.NoError(t, f.controller.Run(false))

	data, err := os.ReadFile(filepath.Join(f.paths.CommandsDir, "daily-note.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "description:")

	st := f.store.Load()
	require.NotNil(t, st)
	assert.True(t, st.Initialized)
	assert.Equal(t, "1.0.0", st.Version)
	assert.Len(t, st.Commands, 2)
	assert.Equal(t, state.SourcePredefined, st.Commands[0].Source)

	require.Len(t, f.reporter.successes, 1)
	assert.Equal(t, []string{"daily-note", "weekly-review"}, f.reporter.commands[0])
}

func TestRun_Idempotent(t *testing.T) {
	f := newFixture(t, fsys.OS())
	require.NoError(t, f.controller.Run(false))

	first := f.store.Load()
	require.NotNil(t, first)
	content, err := os.ReadFile(filepath.Join(f.paths.CommandsDir, "daily-note.md"))
	require.NoError(t, err)

	require.NoError(t, f.controller.Run(false))

	second := f.store.Load()
	assert.Equal(t, first, second, "state must be untouched on a no-op")
	again, err := os.ReadFile(filepath.Join(f.paths.CommandsDir, "daily-note.md"))
	require.NoError(t, err)
	assert.Equal(t, content, again)

	require.Len(t, f.reporter.noops, 1)
	assert.Contains(t, f.reporter.noops[0], "Already initialized")
}

func TestRun_VersionGate(t *testing.T) {
	f := newFixture(t, fsys.OS())
	require.NoError(t, f.controller.Run(false))

	st := f.store.Load()
	require.NotNil(t, st)
	st.Version = "0.9.0"
	require.NoError(t, f.store.Save(st))

	// Without force: report only, change nothing.
	require.NoError(t, f.controller.Run(false))
	require.Len(t, f.reporter.noops, 1)
	assert.Contains(t, f.reporter.noops[0], "Update available: 0.9.0 -> 1.0.0")
	assert.Equal(t, "0.9.0", f.store.Load().Version)

	// With force: rewrite everything.
	require.NoError(t, f.controller.Run(true))
	updated := f.store.Load()
	require.NotNil(t, updated)
	assert.Equal(t, "1.0.0", updated.Version)
	assert.Len(t, updated.Commands, 2)
}

func TestRun_RepairsCorruptedState(t *testing.T) {
	tests := map[string]string{
		"empty commands":    `{"initialized": true, "commands": []}`,
		"missing fields":    `{"version": "1.0.0"}`,
		"syntactic garbage": `{broken`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, fsys.OS())
			require.NoError(t, os.MkdirAll(f.paths.Root, 0o755))
			require.NoError(t, os.WriteFile(f.paths.StateFile, []byte(content), 0o644))

			require.NoError(t, f.controller.Run(false), "corruption is repaired, not fatal")

			st := f.store.Load()
			require.NotNil(t, st)
			assert.True(t, st.IsValid())
			assert.Len(t, st.Commands, 2, "no stale entries survive a repair")
		})
	}
}

func TestRun_RepairWipesStaleFiles(t *testing.T) {
	f := newFixture(t, fsys.OS())
	require.NoError(t, os.MkdirAll(f.paths.CommandsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.paths.CommandsDir, "stale-command.md"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(f.paths.StateFile, []byte(`{"initialized": true, "commands": []}`), 0o644))

	require.NoError(t, f.controller.Run(false))

	_, err := os.Stat(filepath.Join(f.paths.CommandsDir, "stale-command.md"))
	assert.True(t, os.IsNotExist(err), "repair must remove artifacts from prior installs")
}

// errFS injects an error on writes whose path matches a substring.
type errFS struct {
	fsys.FS
	match string
	err   error
	// failures caps how many times the error fires; 0 means always.
	failures int
	writes   int
}

func (f *errFS) WriteFile(path string, data []byte) error {
	if strings.Contains(path, f.match) {
		f.writes++
		if f.failures == 0 || f.writes <= f.failures {
			return f.err
		}
	}
	return f.FS.WriteFile(path, data)
}

func TestRun_AllOrNothingOnWriteFailure(t *testing.T) {
	fs := &errFS{
		FS:    fsys.OS(),
		match: "weekly-review.md",
		err:   &os.PathError{Op: "open", Path: "weekly-review.md", Err: syscall.EACCES},
	}
	f := newFixture(t, fs)

	err := f.controller.Run(false)
	require.Error(t, err)

	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.Permission, cliErr.Category)

	_, statErr := os.Stat(f.paths.Root)
	assert.True(t, os.IsNotExist(statErr), "failed install must leave no artifacts")
	require.Len(t, f.reporter.failures, 1)
}

func TestRun_AllOrNothingOnStateSaveFailure(t *testing.T) {
	fs := &errFS{
		FS:    fsys.OS(),
		match: state.FileName,
		err:   &os.PathError{Op: "open", Path: state.FileName, Err: syscall.EACCES},
	}
	f := newFixture(t, fs)

	err := f.controller.Run(false)
	require.Error(t, err)

	_, statErr := os.Stat(f.paths.CommandsDir)
	assert.True(t, os.IsNotExist(statErr), "command files from the failed attempt must be removed")
}

func TestRun_RetriesTransientErrors(t *testing.T) {
	fs := &errFS{
		FS:    fsys.OS(),
		match: "daily-note.md",
		err:   &os.PathError{Op: "open", Path: "daily-note.md", Err: syscall.EAGAIN},
	}
	f := newFixture(t, fs)

	err := f.controller.Run(false)
	require.Error(t, err)
	assert.Equal(t, 3, fs.writes, "transient failures get exactly 3 attempts")
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, *f.slept)
	assert.Equal(t, apperrors.Transient, apperrors.Classify(err))
}

func TestRun_TransientThenSuccess(t *testing.T) {
	fs := &errFS{
		FS:       fsys.OS(),
		match:    "daily-note.md",
		err:      &os.PathError{Op: "open", Path: "daily-note.md", Err: syscall.EAGAIN},
		failures: 1,
	}
	f := newFixture(t, fs)

	require.NoError(t, f.controller.Run(false))
	assert.Equal(t, []time.Duration{2 * time.Second}, *f.slept)

	st := f.store.Load()
	require.NotNil(t, st)
	assert.True(t, st.IsValid())
}

func TestRun_PermissionFailsWithoutRetry(t *testing.T) {
	fs := &errFS{
		FS:    fsys.OS(),
		match: "daily-note.md",
		err:   &os.PathError{Op: "open", Path: "daily-note.md", Err: syscall.EACCES},
	}
	f := newFixture(t, fs)

	err := f.controller.Run(false)
	require.Error(t, err)
	assert.Equal(t, 1, fs.writes, "permanent errors are never retried")
	assert.Empty(t, *f.slept)
}

func TestRun_InvalidCatalogIsFatal(t *testing.T) {
	paths := NewPaths(t.TempDir(), ".opencode")
	rec := &recorder{}
	ctrl := New(Options{
		FS:       fsys.OS(),
		Paths:    paths,
		Catalog:  []catalog.Definition{{Name: "Bad Name", Description: "", Template: ""}},
		Version:  "1.0.0",
		Reporter: rec,
	})

	err := ctrl.Run(false)
	require.Error(t, err)

	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.Validation, cliErr.Category)

	_, statErr := os.Stat(paths.Root)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_ForceReinstallsValidState(t *testing.T) {
	f := newFixture(t, fsys.OS())
	require.NoError(t, f.controller.Run(false))

	// Tamper with an installed file; force must restore it.
	target := filepath.Join(f.paths.CommandsDir, "daily-note.md")
	require.NoError(t, os.WriteFile(target, []byte("tampered"), 0o644))

	require.NoError(t, f.controller.Run(true))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "description:")
	require.Len(t, f.reporter.successes, 2)
}
