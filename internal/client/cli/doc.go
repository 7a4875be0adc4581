// Package cli provides the interactive portal command-line client.
//
// It wires configuration, the two storage tiers, the session store, the user
// directory and a simulated transport behind services.AuthService, and hosts
// them in a REPL. On start the saved session is validated so a remembered
// user comes back logged in.
//
// Key features:
//   - Sign up / Login (with remember-me) / Logout
//   - whoami re-checks the session against its expiry
//   - Password strength meter
//   - Forgot-password and contact forms
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
