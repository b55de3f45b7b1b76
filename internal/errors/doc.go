// Package apperrors holds the error types shared across arraykit and the
// mapping from those errors to process exit codes. Types that carry a cause
// implement Unwrap.
package apperrors
