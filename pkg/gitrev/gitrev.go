package gitrev

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrFileNotAtRevision reports that the requested file does not exist in
// the tree of the resolved revision.
var ErrFileNotAtRevision = errors.New("file does not exist at revision")

// Repository reads committed file content from a local git repository.
// All operations are read-only and never touch the network.
type Repository struct {
	repo *gogit.Repository
	root string
}

// Open locates the git repository enclosing path. The path may name a
// file or a directory anywhere inside the worktree; discovery walks up
// the directory tree the way git itself does.
func Open(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	start := abs
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		start = filepath.Dir(abs)
	}

	repo, err := gogit.PlainOpenWithOptions(start, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%q is not inside a git repository", path)
		}
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		repo: repo,
		root: worktree.Filesystem.Root(),
	}, nil
}

// Root returns the worktree root of the repository.
func (r *Repository) Root() string {
	return r.root
}

// Resolve turns a revision expression (HEAD, a branch, a tag, a short or
// full SHA, HEAD~2, ...) into a full commit SHA.
func (r *Repository) Resolve(rev string) (string, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}
	return hash.String(), nil
}

// FileAt returns the content of path as committed at rev. The path may
// be absolute or relative to the working directory and must lie inside
// the worktree. A file absent from the revision's tree returns an error
// wrapping ErrFileNotAtRevision.
func (r *Repository) FileAt(rev, path string) ([]byte, error) {
	rel, err := r.relPath(path)
	if err != nil {
		return nil, err
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", rev, err)
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}

	file, err := commit.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%q at revision %q: %w", rel, rev, ErrFileNotAtRevision)
		}
		return nil, fmt.Errorf("failed to look up %q at revision %q: %w", rel, rev, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q at revision %q: %w", rel, rev, err)
	}

	return []byte(contents), nil
}

// relPath converts path into the slash-separated repo-relative form git
// trees use.
func (r *Repository) relPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q is outside the repository at %q", path, r.root)
	}

	return filepath.ToSlash(rel), nil
}
