// Package datastore is the object-storage facade of the sentiment pipeline.
//
// It composes the core storage client into the operations the pipeline
// performs: prefix existence checks, object reads, folder-marker creation,
// file upload with local cleanup, CSV frame round-trip, and staging a Keras
// model artifact through a local temp file.
//
// # Errors
//
// Every operation wraps collaborator failures into one of three kinds:
//   - NotFoundError: a key or prefix resolved to nothing
//   - StorageError: a backend call or local I/O failure, carrying the cause
//   - ParseError: object content that does not parse as CSV
//
// No operation retries, and multi-step operations report no partial success:
// a failed upload leaves the local source file in place even when removal
// was requested.
//
// # Frames
//
// A Frame is the in-memory table exchanged with the bucket as CSV. The
// pipeline's files mark missing values with "na"; serialization renders
// them as empty fields, and both spellings parse back as missing, so a
// round-trip preserves columns, rows, values and missingness.
package datastore
