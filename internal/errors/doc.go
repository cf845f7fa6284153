// Package errors provides typed errors with exit codes for bender-config.
//
// # Error Types
//
// BenderError is the base error type that wraps an error with an exit code:
//
//	type BenderError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for the error kinds the configuration core reports:
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitNotFound        = 2  // No configuration file at the requested path
//	ExitParseError      = 3  // Malformed serialized content
//	ExitValidationError = 4  // A field value violates its domain
//	ExitIOError         = 5  // Filesystem failure on read/write/rename
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.NotFound("/etc/bender/config.toml")
//	errors.ParseError(path, err)
//	errors.FieldValidation("server.port", "must be between 1 and 65535")
//	errors.IO("write config", err)
//
// # Classifying Errors
//
// Predicates inspect the error chain:
//
//	if errors.IsNotFound(err) {
//	    // create a default configuration instead
//	}
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
