package crawler

import "errors"

var (
	// ErrSeedFetch indicates the seed page could not be fetched.
	// Without a seed there is no frontier, so the crawl aborts.
	ErrSeedFetch = errors.New("crawler: seed fetch failed")

	// ErrSeedParse indicates the seed page body could not be parsed.
	ErrSeedParse = errors.New("crawler: seed parse failed")

	// ErrArtifactWrite indicates the output artifact could not be
	// written. A crawl that cannot persist its output has no reason to
	// keep fetching.
	ErrArtifactWrite = errors.New("crawler: artifact write failed")
)
