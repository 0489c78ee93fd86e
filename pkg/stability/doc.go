// Package stability implements central charges, exact phases, and
// stability conditions on quiver representation categories.
//
// A [CentralCharge] is an integer linear functional Z(d) = (re, im) on
// dimension vectors; its [Phase] is the normalized argument of Z(d) in
// (0, 1]. Phases are compared exactly through integer cross products;
// there is no floating-point anywhere in a comparison, so ties (dimension
// vectors on a common ray) are detected precisely. A [Condition] binds a
// representation category to a central charge and owns the semistability
// predicate: a representation of dimension vector d is semistable when no
// nonzero proper sub-dimension-vector has a larger phase.
//
// The sub-dimension-vector test is phase-only: every componentwise-smaller
// vector is assumed to occur as a subrepresentation dimension. This
// assumption is deliberate and covered by tests.
package stability
