// Package cli defines the Cobra command tree for the plugin-install CLI. The
// root command performs the installation, doctor checks the environment, and
// version reports build information. Commands only parse flags, wire
// collaborators, and format output; the workflow itself lives in the
// installer package.
package cli
