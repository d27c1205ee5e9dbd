// Package logging builds the slog loggers used by the zoomdigest CLI and the
// digest pipeline.
//
// It offers a human-oriented console handler and a JSON handler, level
// parsing, component-scoped loggers, and the standard field keys that tie
// every line of a run together. NewNop gives tests and library callers a
// logger that discards everything.
package logging
