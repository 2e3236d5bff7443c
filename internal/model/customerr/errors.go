package customerr

// ValidationError reports malformed or out-of-range input. It is
// raised before any state mutation.
type ValidationError struct {
	Err string
}

func (e *ValidationError) Error() string {
	return e.Err
}

// NotFoundError reports a reference to an expense that does not exist
// for that user. It is an expected, recoverable outcome.
type NotFoundError struct {
	Err string
}

func (e *NotFoundError) Error() string {
	return e.Err
}

// PersistenceError reports that the durable store could not be read or
// written. The in-memory state is left as it was before the operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
