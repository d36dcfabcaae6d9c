package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"confvet-hq/confvet/pkg/cli"
	"confvet-hq/confvet/pkg/config"
)

func resetDiffFlags() {
	diffFlags.file = ""
	diffFlags.revision = "HEAD"
	diffFlags.schemaName = ""
	diffFlags.schemaFile = ""
	diffFlags.format = ""
	diffFlags.strict = false
	cfgFile = config.DefaultSettingsPath
	verbose = false
}

// initDiffRepo creates a git repository in dir with a single commit
// containing the given files.
func initDiffRepo(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, err := worktree.Add(name); err != nil {
			t.Fatalf("failed to add file: %v", err)
		}
	}

	_, err = worktree.Commit("add configuration", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

func TestRunDiffNoFile(t *testing.T) {
	resetDiffFlags()

	err := runDiff(nil, []string{})
	if err == nil {
		t.Error("runDiff() without file should return error")
	}
}

func TestRunDiffNotARepository(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=8080\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetDiffFlags()
	diffFlags.file = path

	err := runDiff(nil, []string{})
	if err == nil {
		t.Fatal("runDiff() outside a repository should return error")
	}
	if code := cli.ExitCode(err); code != cli.ExitFailure {
		t.Errorf("ExitCode() = %d, want %d", code, cli.ExitFailure)
	}
}

func TestRunDiffIntroduced(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{".env": "PORT=8080\n"})

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=80\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetDiffFlags()
	diffFlags.file = path

	err := runDiff(nil, []string{})
	if err == nil {
		t.Fatal("runDiff() with introduced error should return error")
	}

	var findings *cli.FindingsError
	if !errors.As(err, &findings) {
		t.Fatalf("runDiff() error = %v, want FindingsError", err)
	}
	if findings.Errors != 1 {
		t.Errorf("findings.Errors = %d, want 1", findings.Errors)
	}
}

func TestRunDiffResolved(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{".env": "PORT=80\n"})

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=8080\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetDiffFlags()
	diffFlags.file = path

	// Resolved findings never fail a diff.
	if err := runDiff(nil, []string{}); err != nil {
		t.Errorf("runDiff() with only resolved findings returned error: %v", err)
	}
}

func TestRunDiffNoChanges(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{".env": "PORT=8080\n"})

	resetDiffFlags()
	diffFlags.file = filepath.Join(dir, ".env")

	if err := runDiff(nil, []string{}); err != nil {
		t.Errorf("runDiff() with unchanged file returned error: %v", err)
	}
}

func TestRunDiffFileAbsentAtRevision(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{"README.md": "docs\n"})

	// A file that never existed at the revision diffs against an empty
	// baseline: a clean file passes, a bad one counts as introduced.
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=8080\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetDiffFlags()
	diffFlags.file = path

	if err := runDiff(nil, []string{}); err != nil {
		t.Errorf("runDiff() with clean new file returned error: %v", err)
	}

	if err := os.WriteFile(path, []byte("PORT=80\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetDiffFlags()
	diffFlags.file = path

	err := runDiff(nil, []string{})
	if err == nil {
		t.Fatal("runDiff() with bad new file should return error")
	}
	var findings *cli.FindingsError
	if !errors.As(err, &findings) {
		t.Fatalf("runDiff() error = %v, want FindingsError", err)
	}
}

func TestRunDiffBadRevision(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{".env": "PORT=8080\n"})

	resetDiffFlags()
	diffFlags.file = filepath.Join(dir, ".env")
	diffFlags.revision = "no-such-revision"

	err := runDiff(nil, []string{})
	if err == nil {
		t.Fatal("runDiff() with bad revision should return error")
	}
	if code := cli.ExitCode(err); code != cli.ExitFailure {
		t.Errorf("ExitCode() = %d, want %d", code, cli.ExitFailure)
	}
}

func TestRunDiffJSONFormat(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{".env": "PORT=8080\n"})

	resetDiffFlags()
	diffFlags.file = filepath.Join(dir, ".env")
	diffFlags.format = "json"

	if err := runDiff(nil, []string{}); err != nil {
		t.Errorf("runDiff() with JSON format returned error: %v", err)
	}
}

func TestRunDiffStrictIntroducedWarning(t *testing.T) {
	dir := t.TempDir()
	initDiffRepo(t, dir, map[string]string{".env": "HOST=127.0.0.1\n"})

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HOST=0.0.0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetDiffFlags()
	diffFlags.file = path

	// An introduced warning only blocks under strict.
	if err := runDiff(nil, []string{}); err != nil {
		t.Errorf("runDiff() with introduced warning returned error: %v", err)
	}

	resetDiffFlags()
	diffFlags.file = path
	diffFlags.strict = true

	err := runDiff(nil, []string{})
	if err == nil {
		t.Fatal("runDiff() with introduced warning in strict mode should return error")
	}
	var findings *cli.FindingsError
	if !errors.As(err, &findings) {
		t.Fatalf("runDiff() error = %v, want FindingsError", err)
	}
	if findings.Warnings != 1 {
		t.Errorf("findings.Warnings = %d, want 1", findings.Warnings)
	}
}
