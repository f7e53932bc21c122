package service

// StorageError is any read/write failure from the underlying store that the
// save path could not recover from. Uniqueness conflicts during insert are
// recovered internally and never surface as one.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "summary store: " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
