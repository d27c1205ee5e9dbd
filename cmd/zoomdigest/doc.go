// Package main hosts the zoomdigest CLI entrypoint and command graph.
//
// The Cobra-based command tree reads Zoom webinar attendee exports, runs them
// through the attendee digest and writes the qualifying guests as CSV, XLSX,
// JSON or a terminal table. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
