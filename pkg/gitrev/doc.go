// Package gitrev reads committed configuration content from local git
// repositories.
//
// The diff command validates a working-tree file and the same file as of
// an earlier revision, then compares the findings. This package provides
// the revision side of that: locating the enclosing repository, resolving
// revision expressions, and reading a file's content from a commit tree.
//
// # Usage
//
//	repo, err := gitrev.Open("config/app.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := repo.FileAt("HEAD~1", "config/app.json")
//	if errors.Is(err, gitrev.ErrFileNotAtRevision) {
//	    // The file is new; every current finding is introduced.
//	}
//
// Everything operates on the local object store. No remotes are
// contacted and nothing is written.
package gitrev
