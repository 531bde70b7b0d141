package cmderr

// Wrapper for failures of the requested operation vs CLI parsing errors.
// Used to determine whether to print usage message on error.
type PasteErr struct {
	Err error
}

func (e PasteErr) Error() string {
	return e.Err.Error()
}

// github.com/pkg/errors causer interface
func (e PasteErr) Cause() error {
	return e.Err
}

// github.com/pkg/errors Unwrap interface
func (e PasteErr) Unwrap() error {
	return e.Err
}
