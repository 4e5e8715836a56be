// Package config loads the enumerator's optional per-(N,S) print-filter
// and budget table from a YAML file, falling back to an in-memory default
// so the tool runs with zero configuration.
//
// # Complexity
//
// Load is O(size of the YAML file); Default is O(1).
//
// # Errors
//
// Load returns the viper/yaml error verbatim when the file cannot be read
// or parsed. A missing file is not special-cased: callers that want the
// zero-config behaviour call Default explicitly instead.
package config
