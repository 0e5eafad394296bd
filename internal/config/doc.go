// Package config manages user-level settings stored at ~/.plugin-install/config.yaml.
// Every key can also be supplied through a PLUGIN_INSTALL_ environment variable,
// which takes precedence over the file. Missing files are not an error.
package config
