package bbref

import (
	"errors"
	"fmt"
)

// Fetch failure classes. Handlers and the CLI match on these with errors.Is
// to pick status codes and user messages.
var (
	ErrNetwork = errors.New("network failure")
	ErrTimeout = errors.New("request timed out")
	ErrParse   = errors.New("parse failure")
	ErrYear    = errors.New("year outside supported range")
)

// FetchError wraps a failed season fetch with its failure class and year.
type FetchError struct {
	Year int
	Kind error // one of ErrNetwork, ErrTimeout, ErrParse, ErrYear
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch season %d: %s: %v", e.Year, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch season %d: %s", e.Year, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches the failure class so errors.Is(err, bbref.ErrTimeout) works.
func (e *FetchError) Is(target error) bool { return target == e.Kind }
