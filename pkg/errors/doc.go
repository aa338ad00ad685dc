// Package errors provides structured error types for better observability
// and programmatic error handling across the exporter.
//
// Codes separate fatal failures (INVALID_CONFIG, UNAVAILABLE) from failures
// the collection cycle recovers from locally (MALFORMED_DATA, TIMEOUT).
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to fetch model status",
//	    ctx.Err(),
//	    map[string]any{
//	        "endpoint": endpoint,
//	        "model":    modelName,
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeUnavailable) {
//	    os.Exit(1)
//	}
package errors
