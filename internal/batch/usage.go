package batch

import (
	"fmt"
	"strconv"
)

// UsageError reports a malformed command line, typically the cloud count.
type UsageError struct {
	Arg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("usage: %v", e.Err)
	}
	return fmt.Sprintf("invalid cloud count %q: %v", e.Arg, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// ParseCount parses a cloud count argument. Only base-10 integers >= 0 are
// accepted; zero is a valid, empty batch.
func ParseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &UsageError{Arg: arg, Err: err}
	}
	if n < 0 {
		return 0, &UsageError{Arg: arg, Err: ErrInvalidCount}
	}
	return n, nil
}
