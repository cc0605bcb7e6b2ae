// Package model defines the domain types shared across docfetch subsystems.
//
// The types here are deliberately free of behavior beyond small helpers
// (hashing, counters) so that every other package can depend on model
// without import cycles.
package model
