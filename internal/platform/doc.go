// Package platform provides the host filesystem operations the installer
// relies on: existence checks, recursive removal, directory creation, and
// plain byte-for-byte file copies. Symlinks are followed and permission bits
// of the source are not preserved.
package platform
