package gridgraph

// MaxDistance is the distance reported for cells no barrier can reach.
const MaxDistance = 65535

// Grid is a Cols×Rows sample grid. Barrier is row-major; SeamBlocked has one
// flag per row.
type Grid struct {
	Cols, Rows  int
	Barrier     []bool
	SeamBlocked []bool
}
