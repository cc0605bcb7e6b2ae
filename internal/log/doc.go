// Package log provides logging helpers built on top of the standard slog
// package.
//
// A documentation crawl routinely logs whole HTML fragments and converted
// page bodies at debug level. The TruncateHandler caps attribute values at
// a fixed length so that verbose logs remain readable and a single large
// page cannot flood the terminal.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("extracted content",
//	    "url", "https://docs.example.com/",
//	    "fragment", hugeHTMLString, // truncated with an ellipsis marker
//	)
//	slog.SetDefault(logger)
package log
