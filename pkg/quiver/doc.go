// Package quiver models quivers (directed multigraphs with arrow
// multiplicities) and the integer combinatorics attached to them:
// dimension vectors with their dominance order, bilinear pairings (hom,
// ext, Euler), and the motivic stack classes of the representation
// variety.
//
// A [Quiver] is immutable after construction and validates its input:
// vertex indices must lie in range and multiplicities must be
// non-negative. Dimension-vector arithmetic lives on [DimVector];
// [EnumerateBelow] produces the bottom-up evaluation order the
// wall-crossing solver depends on: every vector appears after all
// vectors it dominates.
package quiver
