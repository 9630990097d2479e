// Package project resolves the directory that receives the installation
// root. Running init from a subdirectory of a repository should still place
// .opencode at the repository root, since that is where the OpenCode host
// discovers commands.
package project

import (
	git "github.com/go-git/go-git/v5"
)

// FindRoot returns the enclosing git worktree root for dir, or dir itself
// when dir is not inside a repository (or the repository is bare).
func FindRoot(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return dir
	}
	wt, err := repo.Worktree()
	if err != nil {
		return dir
	}
	return wt.Filesystem.Root()
}
