// Package converter turns extracted markup fragments into Markdown.
//
// The conversion step is the one stage of the pipeline that is allowed to
// degrade: when the HTML-to-Markdown engine fails on a fragment, the
// wrapped raw markup is returned verbatim instead. A page with ugly
// content beats a missing page, so no error ever propagates past this
// package.
package converter
