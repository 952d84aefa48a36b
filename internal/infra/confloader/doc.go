// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (loaded as a map)
//  2. Environment variables
//  3. Configuration files (YAML)
//  4. Default values
//
// A file watcher supports automatic reload on config file changes.
package confloader
