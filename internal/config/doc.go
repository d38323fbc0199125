// Package config provides configuration loading, merging, and validation
// facilities for the notes host and the terminal client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults (per-user data directory, debounce delay, ...)
//
// The main entry points are [GetHostConfig] for the privileged host process
// and [GetClientConfig] for the terminal UI process.
package config
