// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by the CLI.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, rejected title, not found).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates a storage or Google API error.
	BackendError = 3
)
