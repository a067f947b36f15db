// Package config loads the shortpath command's settings from environment
// variables (SHORTPATH_*) and command-line flags, flags taking precedence.
package config
