// Package cli provides the interactive MoodLog command-line dashboard.
//
// It wires configuration, the gRPC client and the session view state into
// a read-eval-print loop. Entries of the current tab are shown a page at a
// time, coloured by mood, and can be filtered by mood or searched by
// content.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
