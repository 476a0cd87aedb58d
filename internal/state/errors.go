package state

import "errors"

var (
	// ErrInvalidInput reports data of the wrong shape, such as a point list
	// that is present but does not hold VertexCount points.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingData reports a required value that is absent altogether.
	ErrMissingData = errors.New("missing data")

	// ErrNotFound reports a lookup by name that matched no shape.
	ErrNotFound = errors.New("broken line does not exist")

	// ErrRejectedVertex reports a candidate vertex refused by a Builder.
	ErrRejectedVertex = errors.New("vertex rejected")
)
