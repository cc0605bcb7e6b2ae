// Package artifact writes the append-only output file of a crawl run.
//
// One artifact exists per site and crawl date. It is created with a header
// block and the seed page's content, then appended to once per processed
// frontier entry, and never rewritten or truncated mid-run. The artifact
// is the sole durable output of a run, so write failures here are fatal
// to the caller while fetch and conversion failures are not.
package artifact
