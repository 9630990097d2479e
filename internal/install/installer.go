// Package install writes rendered command files into the target directory.
// It has no decision logic: consistency across failures is guaranteed by the
// setup controller's cleanup policy, not by this package.
package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raveheart1/notekit/internal/catalog"
	apperrors "github.com/raveheart1/notekit/internal/errors"
	"github.com/raveheart1/notekit/internal/fsys"
)

// Installer writes one markdown file per catalog entry into dir.
type Installer struct {
	fs  fsys.FS
	dir string
}

// New returns an installer targeting dir.
func New(fs fsys.FS, dir string) *Installer {
	return &Installer{fs: fs, dir: dir}
}

// Install validates and writes every catalog entry. A validation failure is
// a defect in the bundled catalog and aborts immediately; write failures are
// classified with the offending path attached.
func (i *Installer) Install(defs []catalog.Definition) error {
	if err := i.fs.EnsureDir(i.dir); err != nil {
		return apperrors.WrapPath(err, i.dir, "creating command directory")
	}

	for _, def := range defs {
		if res := catalog.Validate(def); !res.Valid {
			return apperrors.New(apperrors.Validation,
				fmt.Sprintf("invalid catalog entry %q: %s", def.Name, strings.Join(res.Errors, "; ")),
				"The bundled catalog is defective; reinstall notekit or report a bug")
		}

		path := i.FilePath(def.Name)
		if err := i.fs.WriteFile(path, Render(def)); err != nil {
			return apperrors.WrapPath(err, path, fmt.Sprintf("writing command %q", def.Name))
		}
	}
	return nil
}

// FilePath returns the installed path for a command name.
func (i *Installer) FilePath(name string) string {
	return filepath.Join(i.dir, name+".md")
}

// Render produces the installed file form: a frontmatter header the host
// reads for discovery, followed by the template body verbatim. Optional
// fields are omitted rather than written empty.
func Render(def catalog.Definition) []byte {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("description: " + def.Description + "\n")
	if def.Agent != "" {
		sb.WriteString("agent: " + string(def.Agent) + "\n")
	}
	if def.Model != "" {
		sb.WriteString("model: " + def.Model + "\n")
	}
	sb.WriteString("---\n")
	sb.WriteString(def.Template)
	return []byte(sb.String())
}
