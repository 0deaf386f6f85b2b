// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates converts feed timestamps into display strings.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// timestampLayout is the arXiv feed timestamp grammar, YYYY-MM-DDTHH:MM:SSZ.
const timestampLayout = "2006-01-02T15:04:05Z"

// ErrInvalidTimestamp is matched by every ValidationError.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ValidationError reports an input that does not match the timestamp grammar.
type ValidationError struct {
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: expected YYYY-MM-DDTHH:MM:SSZ", e.Value)
}

// Is lets errors.Is match ErrInvalidTimestamp.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidTimestamp }

// Unwrap returns the underlying time.Parse error, if any.
func (e *ValidationError) Unwrap() error { return e.Err }

// Parse parses ts using the feed timestamp grammar. time.Parse alone also
// accepts fractional seconds and single-digit hours, so the length must
// match the layout exactly.
func Parse(ts string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, ts)
	if err != nil {
		return time.Time{}, &ValidationError{Value: ts, Err: err}
	}
	if len(ts) != len(timestampLayout) {
		return time.Time{}, &ValidationError{Value: ts}
	}
	return t, nil
}

// FormatDate renders ts as "D Month YYYY" (e.g. "10 May 2023").
func FormatDate(ts string) (string, error) {
	t, err := Parse(ts)
	if err != nil {
		return "", err
	}
	return t.Format("2 January 2006"), nil
}

// Year returns the four-digit year of ts.
func Year(ts string) (string, error) {
	t, err := Parse(ts)
	if err != nil {
		return "", err
	}
	return t.Format("2006"), nil
}
