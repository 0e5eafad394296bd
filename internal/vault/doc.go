// Package vault knows the on-disk layout of a host application's vault:
// where the configuration folder lives and where installed plugins go.
package vault
