// Package config holds configuration for docfetch.
//
// Configuration flows from three sources, in increasing precedence:
//  1. Compiled-in defaults (NewConfig)
//  2. The optional .docfetch YAML file (per-site overrides)
//  3. CLI flags
//
// The Config struct is populated once by the CLI layer and passed down via
// dependency injection; no package reads configuration from global state.
package config
