// Package main provides the entry point for the docfetch CLI.
//
// Docfetch downloads API documentation sites into single Markdown
// artifacts. It detects the documentation generator, follows the
// navigation links one level deep, and converts every page to Markdown.
//
// Usage:
//
//	docfetch fetch <url>
//	docfetch history [site]
//
// See --help for all available options.
package main

// main is the entry point for docfetch.
func main() {
	Execute()
}
