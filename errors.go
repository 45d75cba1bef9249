package figgeom

import "errors"

var (
	// ErrTooFewPoints is returned when a spline has fewer control points
	// than its kind requires (closed splines need at least 3).
	ErrTooFewPoints = errors.New("figgeom: too few points")

	// ErrMismatchedControls is returned when a spline's control list is
	// not parallel to its point list.
	ErrMismatchedControls = errors.New("figgeom: control list does not match point list")

	// ErrUnknownKind is returned for object subtypes outside the known range.
	ErrUnknownKind = errors.New("figgeom: unknown object kind")
)
