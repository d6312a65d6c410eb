// Package cli provides the interactive messagely command-line client.
//
// It wires configuration, the gRPC client and the local session store into a
// REPL. A successful login or registration is remembered in the session
// store, so the next start resumes as the same user until logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
