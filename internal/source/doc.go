// Package source locates and fetches a plugin's source repository. It derives
// the local clone directory from a repository URL and drives the git client
// as an external process.
package source
