// Package config loads, merges and validates configuration for the
// verification server and the home client.
//
// Configuration is assembled from multiple sources in the following order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] and [GetClientConfig]; both build on
// [GetStructuredConfig].
package config
