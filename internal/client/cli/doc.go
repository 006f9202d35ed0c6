// Package cli provides the interactive car registry command-line client.
//
// It wires configuration, the gRPC API client and a REPL. The caller logs in
// by typing an account id and the shared signing secret; the token is minted
// locally and attached to every request. Deposits are typed in tokens
// ("3", "1.5") and sent to the server in base units.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
