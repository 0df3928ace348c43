// Package grid provides the dense 2D scalar field used by the Laplace
// solver. A Grid holds rows × cols float64 values in row-major order,
// indexed [row][col] with row 0 at the top.
//
// Dimensions are fixed for the lifetime of a Grid; there is no resizing.
// Access is bounds-checked (At, Set) for callers, with aliased row views
// (RowView) for hot loops. Clone produces an independent deep copy, the
// unit of snapshotting used by the solver's iteration records.
//
// Storage is a gonum mat.Dense, exposed via Dense() for interop with
// numeric consumers.
package grid
