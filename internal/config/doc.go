// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, with ./.env loaded first when present
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The main entry point is [GetStructuredConfig].
package config
