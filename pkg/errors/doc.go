// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeBackendRejected,
//	    "failed to write batch",
//	    cause,
//	    map[string]any{
//	        "measurement": "cpu_info",
//	        "points":      5,
//	    },
//	)
package errors
