// Package cli implements the gophauth command-line client.
//
// Each invocation runs one command against the server and keeps the
// resulting token pair in a local session file for the next run:
//
//	register [email] [name]   create a principal
//	login [email]             authenticate and start a session
//	refresh                   rotate the refresh token
//	whoami                    show the authenticated principal
//	logout                    revoke every refresh token of the principal
//
// Passwords are always read from the terminal without echo.
package cli
