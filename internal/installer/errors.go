package installer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vaultwright/plugin-install/internal/branding"
)

// Kind classifies why an installation stopped.
type Kind int

const (
	// ToolingMissing means git is absent or did not answer a version query.
	ToolingMissing Kind = iota + 1
	// InvalidSource means no clone directory name could be derived from the URL.
	InvalidSource
	// DestinationExists means the local clone directory is already present.
	DestinationExists
	// CloneFailed means git exited non-zero while cloning.
	CloneFailed
	// ClonedRepoIncomplete means the entry point or manifest is missing from the clone.
	ClonedRepoIncomplete
	// ManifestMalformed means the manifest is not a JSON object.
	ManifestMalformed
	// ManifestIncomplete means the manifest lacks a usable id or name.
	ManifestIncomplete
	// TargetNotInitialized means the vault has no plugin-storage directory.
	TargetNotInitialized
	// InstallationAborted means the operator declined to overwrite.
	InstallationAborted
	// CopyFailed means writing the destination failed.
	CopyFailed
)

var kindNames = map[Kind]string{
	ToolingMissing:       "ToolingMissing",
	InvalidSource:        "InvalidSource",
	DestinationExists:    "DestinationExists",
	CloneFailed:          "CloneFailed",
	ClonedRepoIncomplete: "ClonedRepoIncomplete",
	ManifestMalformed:    "ManifestMalformed",
	ManifestIncomplete:   "ManifestIncomplete",
	TargetNotInitialized: "TargetNotInitialized",
	InstallationAborted:  "InstallationAborted",
	CopyFailed:           "CopyFailed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by Install for every failure.
type Error struct {
	Kind Kind
	// Path is the file or directory the failure concerns, if any.
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.summary()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Hint returns a remediation suggestion for the operator, or "".
func (e *Error) Hint() string { return e.Kind.Hint() }

// Hint returns the remediation suggestion for failures of kind k, or "".
func (k Kind) Hint() string {
	switch k {
	case ToolingMissing:
		return "Please install Git from https://git-scm.com/downloads"
	case DestinationExists:
		return "Please remove it or choose a different directory."
	case TargetNotInitialized:
		return "Ensure the vault is properly set up."
	default:
		return ""
	}
}

func (e *Error) summary() string {
	switch e.Kind {
	case ToolingMissing:
		return "git is not installed"
	case InvalidSource:
		return "invalid repository URL"
	case DestinationExists:
		return fmt.Sprintf("clone directory %s already exists", e.Path)
	case CloneFailed:
		return "cloning repository failed"
	case ClonedRepoIncomplete:
		return fmt.Sprintf("%s not found in the repository", filepath.Base(e.Path))
	case ManifestMalformed, ManifestIncomplete:
		return fmt.Sprintf("invalid manifest %s", e.Path)
	case TargetNotInitialized:
		return fmt.Sprintf("%s plugins directory not found at %s", branding.HostApp(), e.Path)
	case InstallationAborted:
		return "installation aborted"
	case CopyFailed:
		return fmt.Sprintf("installing plugin files to %s failed", e.Path)
	default:
		return "installation failed"
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return 0
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
