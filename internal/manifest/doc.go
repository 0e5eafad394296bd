// Package manifest reads a plugin's manifest.json and extracts the two fields
// an installation needs: the plugin identifier and its display name. The
// document is checked against an embedded JSON Schema so that missing or
// unusable fields are reported precisely.
package manifest
