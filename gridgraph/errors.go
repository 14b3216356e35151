package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrMaskSize indicates a barrier mask whose length is not Cols×Rows.
	ErrMaskSize = errors.New("gridgraph: mask length does not match grid size")
)
