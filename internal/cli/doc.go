// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates cobra flags into the application's internal configuration.
//
// Every failure leaves Execute as an *ExitError: code 2 for usage problems
// (unknown flags, invalid flag values) and code 1 for a failed resolution.
package cli
