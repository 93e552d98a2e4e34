// Package coreerrors defines the sentinel error taxonomy shared across the
// optimization core: config validation, input parsing, and empty-archive
// diagnostics. Infeasible candidates and timeouts are not represented here
// because they are not surfaced as errors (see the evaluator and engines).
package coreerrors

import "errors"

// ErrUnknownAttraction is returned by the transport oracle when a lookup
// name is not present in its index.
var ErrUnknownAttraction = errors.New("tourplanner: unknown attraction")

// ErrConfigInvalid is returned when an engine parameter is out of range.
// Wrap it with fmt.Errorf("%w: ...") to attach the offending field.
var ErrConfigInvalid = errors.New("tourplanner: invalid configuration")

// ErrInputParse is returned for malformed CSV input: bad headers, missing
// attractions, or transport matrices with inconsistent dimensions.
var ErrInputParse = errors.New("tourplanner: input parse error")

// ErrEmptyArchive is returned by metrics computed over an empty archive.
// Callers should treat it as a diagnostic, not a fatal condition: the
// defined zero value for the metric is still meaningful.
var ErrEmptyArchive = errors.New("tourplanner: metric computed over empty archive")
