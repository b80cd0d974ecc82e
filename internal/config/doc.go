// Package config loads, merges and validates go-trade-dash configuration.
//
// Sources are applied in this order, later non-zero values overriding
// earlier ones:
//  1. Built-in defaults
//  2. Environment variables (a .env file is loaded first when present)
//  3. Command-line flags
//  4. JSON config file
//
// [GetServerConfig] and [GetClientConfig] return validated views for the two
// binaries.
package config
