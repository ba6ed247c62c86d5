package fits

import "fmt"

// InvalidExtension is returned when an HDU appears where the classifier's
// grammar does not allow it.
type InvalidExtension struct {
	Reason string
}

func (e InvalidExtension) Error() string {
	return fmt.Sprintf("fits: invalid extension: %s", e.Reason)
}

// MissingPrimary is returned when the HDU list is empty.
type MissingPrimary struct{}

func (MissingPrimary) Error() string { return "fits: missing primary HDU" }

// FormatError wraps a failure from the external low-level FITS parser.
type FormatError struct {
	Inner error
}

func (e FormatError) Error() string { return fmt.Sprintf("fits: format error: %s", e.Inner) }

// Unwrap lets errors.Is/errors.As reach the underlying parser error.
func (e FormatError) Unwrap() error { return e.Inner }
