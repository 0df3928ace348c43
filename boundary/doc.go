// Package boundary applies Dirichlet and Neumann boundary conditions to
// the four edges of a grid.Grid.
//
// A Set holds one Condition per edge (Top, Bottom, Left, Right):
//
//   - Dirichlet fixes the field value on the edge directly: every cell of
//     the boundary row/column, corners included, is overwritten.
//   - Neumann fixes the outward normal derivative ∂u/∂n via a first-order
//     one-sided difference against the adjacent interior cell, using the
//     grid spacing as the step. Neumann writes cover only the interior
//     strip of the edge; the two corner cells are left to the
//     perpendicular edges.
//
// Corner policy: Apply writes edges in the fixed order Top, Bottom, Left,
// Right, and later writes win. When two adjacent Dirichlet edges disagree,
// the Left/Right value therefore owns the shared corner. The order is a
// policy choice, not a physical law; it is deterministic and covered by an
// explicit test.
package boundary
