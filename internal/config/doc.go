// Package config provides configuration loading, merging, and validation
// facilities for cliper.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (path from CLIPER_CONFIG or -c / --config)
//  3. Environment variables prefixed with CLIPER_
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
