// Package apperr defines the sentinel errors shared across the storage,
// service and controller layers. Callers branch on these with errors.Is;
// everything else is wrapped context.
package apperr

import "errors"

var (
	// ErrStorageUnavailable means the durable store could not be opened at
	// all (unreachable database, bad credentials). Fatal at startup.
	ErrStorageUnavailable = errors.New("durable store unavailable")

	// ErrNotInitialized means a store operation ran before Open completed.
	// This is a programming error in the wiring, not a user-visible state.
	ErrNotInitialized = errors.New("durable store not initialized")

	// ErrDuplicateID means an add collided with an existing record id.
	// Recoverable: the caller may retry as an update.
	ErrDuplicateID = errors.New("record id already exists")

	// ErrNotFound means a referenced record is absent. Deletes treat this
	// as a no-op and lookups as nil; only required-record updates surface it.
	ErrNotFound = errors.New("record not found")

	// ErrBackupCorrupt means the stored snapshot could not be parsed.
	// The backup manager reports this as "no backup", never as a crash.
	ErrBackupCorrupt = errors.New("backup snapshot unreadable")

	// ErrImportValidation means an import file failed structural validation.
	// Raised before any destructive step; existing data stays untouched.
	ErrImportValidation = errors.New("import data failed validation")

	// ErrInvalidInput means a request value is out of range or malformed
	// in a way binding tags cannot express.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationUnavailable means the text-generation collaborator could
	// not serve the request (missing key, API failure, timeout).
	ErrGenerationUnavailable = errors.New("text generation unavailable")
)
