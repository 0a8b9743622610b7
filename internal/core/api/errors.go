package api

// Error mapping is done inline in handlers.
// Auth errors mapped in auth package interceptor.
// Database errors map to UNAVAILABLE.
// Validation errors (bad expressions, bad values JSON) map to INVALID_ARGUMENT.
// Missing field values and incompatible schemas map to FAILED_PRECONDITION.
