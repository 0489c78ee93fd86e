// Package motive computes motivic classes of semistable moduli stacks and
// the Donaldson–Thomas invariants derived from them.
//
// # Wall crossing
//
// For a stability condition and a dimension vector d, the class S(d) of the
// semistable stack at the phase of d satisfies the Harder–Narasimhan
// identity: the class of the full representation stack decomposes over
// ordered tuples (d_1, …, d_k) of nonzero dimension vectors with strictly
// decreasing phases summing to d,
//
//	[Rep(d)/GL(d)] = Σ  Π_i S(d_i) · L^(−Σ_{i<j} χ(d_j, d_i)).
//
// The trivial tuple (d) contributes S(d) itself, so S(d) is the full stack
// class minus every k ≥ 2 term. [Solver] evaluates this as an explicit
// bottom-up dynamic program over the dominance-ordered enumeration of
// vectors below d, never as top-down recursion, with every S(e) memoized
// exactly once for the lifetime of the solver. The decomposition search is
// exponential in the number of candidate summands; that is inherent to the
// domain, and callers bound the dimension vector accordingly.
//
// # DT invariants
//
// [Series] turns semistable classes into DT invariants. For d ≠ 0,
//
//	DT(d) = (L − 1) · R^(χ(d,d) − 2) · T(d),
//
// where T is the plethystic logarithm of the twisted semistable series
// Ñ(e) = R^(χ(e,e))·S(e) over the phase cone of d, carrying the full
// multi-cover correction (divisor sums with the Frobenius twist
// R → −(−R)^k). DT(0) = 1 by convention. The prefactor is normalized so
// that every simple representation, including vertices carrying loops,
// has DT invariant 1.
//
// Substituting R = −1 via ring.Expr.EvalRat recovers numerical DT
// invariants; for non-generic stability conditions the substitution can
// leave a residual denominator, which EvalRat reports as a non-reducible
// result rather than an error.
package motive
