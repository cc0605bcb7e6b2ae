// Package extractor provides format detection and content/link extraction
// for documentation pages.
//
// # Architecture
//
// Each supported documentation generator gets a Strategy: a detector paired
// with a content extractor and a navigation-link extractor. The Registry
// holds strategies in an explicit order and selects the first one whose
// detector matches the page.
//
// Design decision: The registry is an ordered slice rather than a map keyed
// by id because detection order matters and must be explicit. The registry
// is a plain value constructed by the entry point and passed down; there is
// no ambient global registration.
//
// # Adding a strategy
//
// Implement Strategy for the new generator and append it to the slice
// passed to NewRegistry. Detection should rely on stable generator
// signatures (footer attribution text, asset paths) rather than styling.
package extractor
