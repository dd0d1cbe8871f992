package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when a coordinate lies outside the grid
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrDimensionMismatch is returned when two grids of different shape are compared
	ErrDimensionMismatch = errors.New("grid dimensions differ")
)
