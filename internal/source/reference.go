package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidURL is returned when no directory name can be derived from a URL.
var ErrInvalidURL = errors.New("repository URL has no usable name")

// Reference identifies a remote repository and the local directory it is
// cloned into.
type Reference struct {
	URL      string
	Name     string
	CloneDir string
}

// NewReference derives the clone directory for url inside workDir.
func NewReference(url, workDir string) (*Reference, error) {
	name, err := RepoName(url)
	if err != nil {
		return nil, err
	}
	return &Reference{
		URL:      url,
		Name:     name,
		CloneDir: filepath.Join(workDir, name),
	}, nil
}

// RepoName returns the last path segment of a repository URL with a trailing
// ".git" removed, e.g. "https://host/owner/my-plugin.git" → "my-plugin".
// scp-style URLs ("git@host:owner/repo.git") are handled too.
func RepoName(url string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	name := strings.TrimSuffix(trimmed, ".git")

	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '\\') {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}
	return name, nil
}
