// Package logging builds the slog handlers used by the command line tools
// and the HTTP server.
//
// Three output formats are supported: slog's own text and JSON handlers,
// and PrettyHandler, a colored single-line format for terminals:
//
//	[15:04:05.000] INFO: loaded dataset {"companies":100,"people":1000}
package logging
