// Package collision resolves movement of a convex polygon against static convex obstacles.
//
// Entry points:
//   - Sweep: convex region covered by a polygon translating along a displacement
//   - MoveInto: longest safe prefix of a displacement against one obstacle
//   - MinimumTranslation: separating correction for already-overlapping shapes (2D GJK/EPA)
//
// All functions are pure over their inputs: no I/O, no retained state, safe for
// concurrent use on disjoint or shared read-only data.
package collision
