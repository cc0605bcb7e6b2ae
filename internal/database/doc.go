// Package database provides SQLite-based crawl history for docfetch.
//
// Every page persisted to an artifact gets one history row: which site it
// belongs to, what was fetched, which extractor produced the content, and
// the content hash. The history answers "when did I last pull these docs,
// and did they change" across runs; it is never used as crawl state
// within a run.
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
//  1. No external dependencies - the database is a single file
//  2. CGO-free implementation allows easy cross-compilation
//  3. Sufficient performance for our use case
//  4. WAL mode provides good concurrent read performance
package database
