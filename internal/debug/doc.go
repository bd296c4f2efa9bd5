// Package debug provides optional file-based debug logging.
//
// When the FLEXEL_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// Useful when the main output surface is owned by a paint backend and
// stderr is not a safe place to write.
package debug
