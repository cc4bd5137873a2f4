// Package cli provides the interactive administration command-line client.
//
// It wires configuration, the credential store, the HTTP gateways, the
// orchestration use-cases and the form controller into an interactive REPL.
// Typical flow: restore the session from a stored token (or sign in), then
// list, inspect, create, edit and delete users.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
