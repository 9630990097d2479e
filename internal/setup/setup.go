// Package setup orchestrates installation: it inspects the persisted state,
// decides between install, skip, update, and repair, runs the
// install-and-persist sequence under the retry policy, and guarantees that
// any failure leaves the tree equivalent to "not installed".
//
// Two concurrent invocations against the same directory are not
// serializable; the all-or-nothing guarantee holds for a single invocation.
package setup

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/raveheart1/notekit/internal/catalog"
	apperrors "github.com/raveheart1/notekit/internal/errors"
	"github.com/raveheart1/notekit/internal/fsys"
	"github.com/raveheart1/notekit/internal/install"
	"github.com/raveheart1/notekit/internal/logging"
	"github.com/raveheart1/notekit/internal/report"
	"github.com/raveheart1/notekit/internal/retry"
	"github.com/raveheart1/notekit/internal/state"
)

// CommandsDirName is the subdirectory of the installation root holding one
// file per installed command.
const CommandsDirName = "commands"

// Paths fixes the filesystem layout of one installation.
type Paths struct {
	// Root is the installation root, e.g. <project>/.opencode.
	Root string
	// CommandsDir is Root/commands.
	CommandsDir string
	// StateFile is Root/notekit.json.
	StateFile string
}

// NewPaths derives the layout from a project root and the configured
// installation root directory name.
func NewPaths(projectRoot, rootDir string) Paths {
	root := filepath.Join(projectRoot, rootDir)
	return Paths{
		Root:        root,
		CommandsDir: filepath.Join(root, CommandsDirName),
		StateFile:   filepath.Join(root, state.FileName),
	}
}

// Controller is the init state machine.
type Controller struct {
	fs        fsys.FS
	paths     Paths
	catalog   []catalog.Definition
	version   string
	store     *state.Store
	installer *install.Installer
	reporter  report.Reporter
	log       logging.Logger
	policy    retry.Policy
	now       func() time.Time
}

// Options configures a Controller. FS, Reporter, and Catalog are required;
// everything else has working defaults.
type Options struct {
	FS       fsys.FS
	Paths    Paths
	Catalog  []catalog.Definition
	Version  string
	Reporter report.Reporter
	Log      logging.Logger
	// Policy overrides the default retry policy when non-nil.
	Policy *retry.Policy
	// Now overrides the clock, used by tests.
	Now func() time.Time
}

// New builds a Controller from opts.
func New(opts Options) *Controller {
	c := &Controller{
		fs:       opts.FS,
		paths:    opts.Paths,
		catalog:  opts.Catalog,
		version:  opts.Version,
		reporter: opts.Reporter,
		log:      opts.Log,
		now:      opts.Now,
	}
	if c.version == "" {
		c.version = catalog.Version
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if opts.Policy != nil {
		c.policy = *opts.Policy
	} else {
		c.policy = retry.New(apperrors.IsRetryable)
	}
	c.store = state.NewStore(c.fs, c.paths.StateFile)
	c.installer = install.New(c.fs, c.paths.CommandsDir)
	return c
}

// Run executes one init invocation. On a benign no-op or success it reports
// through the Reporter and returns nil. Every terminal failure is reported
// as a classified error and returned for exit-code mapping; the caller must
// not print it again.
func (c *Controller) Run(force bool) error {
	st := c.store.Load()
	initialized := st != nil && st.Initialized
	valid := st.IsValid()

	if initialized && valid && !force {
		if state.NeedsUpdate(st.Version, c.version) {
			c.reporter.Noop(
				fmt.Sprintf("Update available: %s -> %s. Run 'notekit init --force' to update.", st.Version, c.version),
				st.CommandNames())
			return nil
		}
		c.reporter.Noop(
			fmt.Sprintf("Already initialized (version %s).", st.Version),
			st.CommandNames())
		return nil
	}

	// Corrupted state and forced reinstalls start from a clean slate. A
	// plainly absent state has nothing to remove.
	switch {
	case initialized && !valid:
		c.log.Warn("state record is corrupted, reinstalling", "path", c.paths.StateFile)
		c.cleanup()
	case force:
		c.log.Debug("force flag set, reinstalling", "root", c.paths.Root)
		c.cleanup()
	case st != nil && !valid:
		// Present but never marked initialized: a prior attempt died
		// between writing files and recording success. Wipe the leftovers.
		c.log.Warn("found partial installation, reinstalling", "root", c.paths.Root)
		c.cleanup()
	}

	c.reporter.StartProgress(fmt.Sprintf("Installing note commands to %s...", c.paths.CommandsDir))
	err := c.policy.Do(c.installAndPersist)
	c.reporter.StopProgress()

	if err != nil {
		cliErr := ensureClassified(err, c.paths.Root)
		c.reporter.Failure(cliErr)
		c.cleanup()
		return cliErr
	}

	c.reporter.Success(
		fmt.Sprintf("Installed %d note commands to %s (version %s).", len(c.catalog), c.paths.CommandsDir, c.version),
		commandNames(c.catalog))
	return nil
}

// installAndPersist is the retryable unit: write every command file, then
// record the new state. Writing state last keeps the invariant that a valid
// state record implies the files exist.
func (c *Controller) installAndPersist() error {
	if err := c.installer.Install(c.catalog); err != nil {
		return err
	}

	now := c.now()
	records := make([]state.CommandRecord, len(c.catalog))
	for i, def := range c.catalog {
		records[i] = state.CommandRecord{
			Name:        def.Name,
			InstalledAt: now,
			Version:     c.version,
			Source:      state.SourcePredefined,
		}
	}
	newState := &state.Installation{
		Initialized: true,
		Version:     c.version,
		InstalledAt: &now,
		Commands:    records,
	}
	if err := c.store.Save(newState); err != nil {
		return apperrors.WrapPath(err, c.paths.StateFile, "writing state record")
	}
	return nil
}

// cleanup restores the pre-installation baseline by removing the whole
// installation root. Best effort: a removal failure is logged and swallowed
// so it never masks the failure that triggered it.
func (c *Controller) cleanup() {
	if err := c.fs.RemoveAll(c.paths.Root); err != nil {
		c.log.Warn("cleanup failed", "path", c.paths.Root, "error", err)
	}
}

// ensureClassified guarantees the terminal error is a *CLIError with
// remediation attached.
func ensureClassified(err error, root string) *apperrors.CLIError {
	var cliErr *apperrors.CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return apperrors.WrapPath(err, root, "installation failed")
}

func commandNames(defs []catalog.Definition) []string {
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}
