package wrap

import "errors"

// Sentinel errors of the wrap package. ErrLogicCInIsInfinite and
// ErrLogicR2IntersectionFailed are returned by Carver.Run and are
// LogicErrors per spec §7: fatal, unrecoverable, and never retried.
// ErrUnknownPolicy, ErrInvalidAlpha and ErrInvalidOffset are returned by
// NewCarver's config validation. Reaching MaxIterations is not an error; it
// sets Stats.Terminated.
var (
	// ErrEmptyPointSet names the empty-input condition. Carver.Run does not
	// return it: over an oracle built from zero points Run returns an empty
	// Result and a nil error.
	ErrEmptyPointSet = errors.New("wrap: point set is empty")

	// ErrLogicCInIsInfinite fires if a gate's inside face is ever found to
	// be infinite while processing the queue — a triangulation invariant
	// violation, since gates are only ever pushed with a finite inside face.
	ErrLogicCInIsInfinite = errors.New("wrap: gate's inside face is infinite")

	// ErrLogicR2IntersectionFailed fires when R2's do_intersect check
	// passed but the follow-up first_intersection query failed to return a
	// Steiner point — a numerical inconsistency between the two oracle
	// queries that the caller must resolve by widening tolerances.
	ErrLogicR2IntersectionFailed = errors.New("wrap: R2 intersection query failed after do_intersect succeeded")

	// ErrUnknownPolicy is returned by config validation when no policy was
	// selected via a WithPolicy option.
	ErrUnknownPolicy = errors.New("wrap: no traversability policy configured")

	// ErrInvalidAlpha is returned by config validation for a non-positive
	// alpha.
	ErrInvalidAlpha = errors.New("wrap: alpha must be strictly positive")

	// ErrInvalidOffset is returned by config validation for a non-positive
	// offset.
	ErrInvalidOffset = errors.New("wrap: offset must be strictly positive")

	// ErrInvalidMaxIterations supplies the panic message for
	// WithMaxIterations given a non-positive cap (the panic value is the
	// message string, not the error itself).
	ErrInvalidMaxIterations = errors.New("wrap: MaxIterations must be strictly positive")
)
