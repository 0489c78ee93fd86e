// Package ring implements the coefficient ring used for motivic classes:
// rational expressions in one formal variable R, where L = R² denotes the
// Lefschetz motive.
//
// Expressions are kept as reduced fractions of integer-coefficient
// polynomials in R. All arithmetic is exact (math/big); there is no
// floating-point path anywhere in the package. Every operation returns a
// new value, so expressions can be shared freely across caches.
//
// # Variables
//
// The two named constants callers interact with are [R], the formal square
// root of the Lefschetz motive, and [L] = R². Substituting a concrete value
// for R is done with [Expr.EvalRat]; the canonical substitution R = −1
// recovers numerical DT invariants. EvalRat reports failure (a vanishing
// denominator after full cancellation) through its boolean result rather
// than an error; a non-reducible value is a legitimate outcome for
// non-generic stability conditions, not a fault.
//
// # Normal form
//
// Fractions are normalized on construction: numerator and denominator are
// divided by their polynomial GCD and integer content, and the denominator's
// leading coefficient is kept positive. [Expr.Equal] therefore reduces to
// component-wise comparison, and [Expr.IsPolynomial] to the denominator
// being the constant 1.
package ring
