/* errors.go
 * Sentinel errors for the failure taxonomy used across the application. Callers
 * wrap these with fmt.Errorf("...: %w", err) and the web layer maps them to
 * HTTP status codes with errors.Is
 */

package shared

import "errors"

var (
	// ErrValidation covers malformed or incomplete brackets, duplicate
	// prediction names and invalid winner selections. Reported to the
	// caller, never retried
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMatchup is returned when a matchup id does not exist in the
	// bracket template
	ErrInvalidMatchup = errors.New("invalid matchup id")

	// ErrNotFound is returned when a prediction or result lookup misses
	ErrNotFound = errors.New("not found")

	// ErrUpstreamFetch aborts a sync run entirely; eligible for retry on the
	// next scheduled invocation only
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrPersistence is surfaced when the store is unavailable. Batch writes
	// are atomic per document; the sync job stops on the first failure and
	// reports what succeeded
	ErrPersistence = errors.New("persistence failure")
)
