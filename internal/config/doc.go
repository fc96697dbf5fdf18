// Package config loads the optional repo-local YAML configuration. It is
// internal; CLI code merges flags over file values.
package config
