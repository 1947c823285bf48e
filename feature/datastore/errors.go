package datastore

import "fmt"

// NotFoundError reports that a key or prefix resolved to no object.
type NotFoundError struct {
	Bucket string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object %q not found in bucket %q", e.Key, e.Bucket)
}

// StorageError wraps a backend call failure or a local I/O failure during
// upload, download or temp-file handling.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %q failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError reports that object content does not parse into a frame.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q as csv: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
