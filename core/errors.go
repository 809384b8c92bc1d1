package core

import "fmt"

var (
	// ErrEmptyQuery is returned by the entry point when the raw query is
	// empty or whitespace-only. Validation happens before classification.
	ErrEmptyQuery = fmt.Errorf("query must not be empty")
)
