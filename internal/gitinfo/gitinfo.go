// Package gitinfo reports the read-only git state of a skills directory.
package gitinfo

import (
	"errors"
	"fmt"
	"os"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// Status describes the repository containing a directory.
type Status struct {
	IsRepo bool   `json:"is_repo" yaml:"is_repo"`
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Head   string `json:"head,omitempty" yaml:"head,omitempty"`
	Dirty  bool   `json:"dirty" yaml:"dirty"`
}

const shortHashLen = 7

// Inspect returns the git status of the repository containing path. A path
// outside any repository gives IsRepo false and no error. Branch is empty
// for a detached HEAD, Branch and Head are both empty before the first
// commit.
func Inspect(path string) (Status, error) {
	if _, err := os.Stat(path); err != nil {
		return Status{}, apperrors.FromOS("inspect git", path, err)
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logging.Debug("Not a git repository", "path", path)
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("failed to open repository: %w", err)
	}

	st := Status{IsRepo: true}

	ref, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// no commits yet
	case err != nil:
		return Status{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	default:
		if ref.Name().IsBranch() {
			st.Branch = ref.Name().Short()
		}
		st.Head = ref.Hash().String()[:shortHashLen]
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return Status{}, fmt.Errorf("failed to get working tree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return Status{}, fmt.Errorf("failed to get repository status: %w", err)
	}
	st.Dirty = !status.IsClean()

	logging.Debug("Inspected git repository", "path", path, "branch", st.Branch, "dirty", st.Dirty)
	return st, nil
}
