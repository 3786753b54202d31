// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources; earlier sources win for
// fields they set and built-in defaults fill the rest:
//  1. Environment variables (with optional .env bootstrap)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
