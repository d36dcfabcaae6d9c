package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format tags the on-disk syntax a configuration was parsed from.
type Format string

const (
	FormatJSON Format = "json"
	FormatEnv  Format = "env"
)

// File is one loaded configuration source.
type File struct {
	Path   string
	Format Format
	Values map[string]any
}

// Load reads and parses the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	format := DetectFormat(path, data)
	values, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s file %q: %w", format, path, err)
	}
	return &File{Path: path, Format: format, Values: values}, nil
}

// DetectFormat picks the parser for a file. The file name wins: a .json
// extension means JSON, and a .env extension or a name like .env or
// .env.production means dotenv. Otherwise content starting with '{' is
// treated as JSON and anything else as dotenv.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".env":
		return FormatEnv
	}
	base := strings.ToLower(filepath.Base(path))
	if base == ".env" || strings.HasPrefix(base, ".env.") {
		return FormatEnv
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatEnv
}

// Discover lists the configuration files directly inside dir: *.json,
// *.env, and dotfiles named .env or .env.*, sorted by path. It does not
// recurse.
func Discover(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range []string{"*.json", "*.env", ".env", ".env.*"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %q: %w", dir, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
