// Package crawler orchestrates a single documentation crawl.
//
// A crawl is one forward pass: fetch the seed page, detect the
// documentation generator, build a frontier from the seed's navigation
// links, then drain the frontier sequentially. Each drained page is
// extracted, converted to Markdown, and appended to the run's artifact.
//
// Design decision: The crawl is strictly sequential because:
//  1. Documentation sites are small; politeness matters more than speed
//  2. A blocking inter-request delay is the rate limiter, so there is
//     nothing for a worker pool to parallelize
//  3. Sequential processing keeps the artifact in discovery order
package crawler
