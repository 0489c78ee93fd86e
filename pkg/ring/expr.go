package ring

import (
	"math/big"
)

// Expr is a rational expression in R, kept as a reduced fraction of
// integer-coefficient polynomials. The zero value is not usable; obtain
// expressions from the constructors in this package and treat them as
// immutable: every method returns a new Expr.
type Expr struct {
	num poly
	den poly
}

// R returns the formal square root of the Lefschetz motive.
func R() *Expr { return &Expr{num: newPoly(0, 1), den: newPoly(1)} }

// L returns the Lefschetz motive, L = R².
func L() *Expr { return &Expr{num: newPoly(0, 0, 1), den: newPoly(1)} }

// Zero returns the zero expression.
func Zero() *Expr { return &Expr{num: poly{}, den: newPoly(1)} }

// One returns the unit expression.
func One() *Expr { return Int(1) }

// Int returns the constant expression n.
func Int(n int64) *Expr { return &Expr{num: newPoly(n), den: newPoly(1)} }

// Rat returns the constant expression p/q. It panics when q is zero.
func Rat(p, q int64) *Expr {
	if q == 0 {
		panic("ring: zero denominator")
	}
	return reduce(newPoly(p), newPoly(q))
}

// FromRat returns the constant expression with the value of v.
func FromRat(v *big.Rat) *Expr {
	num := poly{coef: []*big.Int{new(big.Int).Set(v.Num())}}.trim()
	den := poly{coef: []*big.Int{new(big.Int).Set(v.Denom())}}
	return reduce(num, den)
}

// PowR returns R^n; n may be negative.
func PowR(n int) *Expr {
	if n >= 0 {
		return &Expr{num: monomial(intOne, n), den: newPoly(1)}
	}
	return &Expr{num: newPoly(1), den: monomial(intOne, -n)}
}

// PowL returns L^n = R^(2n); n may be negative.
func PowL(n int) *Expr { return PowR(2 * n) }

// reduce builds the normal form num/den: polynomial GCD cancelled, integer
// content divided out, denominator leading coefficient positive.
func reduce(num, den poly) *Expr {
	if den.isZero() {
		panic("ring: zero denominator")
	}
	if num.isZero() {
		return &Expr{num: poly{}, den: newPoly(1)}
	}
	if g := num.gcd(den); g.degree() > 0 {
		num, _ = num.exactQuo(g)
		den, _ = den.exactQuo(g)
	}
	cn, cd := num.content(), den.content()
	c := new(big.Int).GCD(nil, nil, cn, cd)
	if den.lead().Sign() < 0 {
		c.Neg(c)
	}
	return &Expr{num: num.divContent(c), den: den.divContent(c)}
}

// Add returns e + f.
func (e *Expr) Add(f *Expr) *Expr {
	return reduce(e.num.mul(f.den).add(f.num.mul(e.den)), e.den.mul(f.den))
}

// Sub returns e − f.
func (e *Expr) Sub(f *Expr) *Expr {
	return reduce(e.num.mul(f.den).sub(f.num.mul(e.den)), e.den.mul(f.den))
}

// Neg returns −e.
func (e *Expr) Neg() *Expr { return &Expr{num: e.num.neg(), den: e.den} }

// Mul returns e · f.
func (e *Expr) Mul(f *Expr) *Expr {
	return reduce(e.num.mul(f.num), e.den.mul(f.den))
}

// Div returns e / f. It panics when f is zero; divisions in this system are
// by gauge-group classes and normalizers, which never vanish identically.
func (e *Expr) Div(f *Expr) *Expr {
	if f.IsZero() {
		panic("ring: division by zero expression")
	}
	return reduce(e.num.mul(f.den), e.den.mul(f.num))
}

// Pow returns e^n; n may be negative for nonzero e.
func (e *Expr) Pow(n int) *Expr {
	if n < 0 {
		return One().Div(e.Pow(-n))
	}
	acc := One()
	base := e
	for n > 0 {
		if n%2 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n /= 2
	}
	return acc
}

// IsZero reports whether e is the zero expression.
func (e *Expr) IsZero() bool { return e.num.isZero() }

// IsOne reports whether e is the unit expression.
func (e *Expr) IsOne() bool {
	return e.den.degree() == 0 && e.num.equal(e.den)
}

// Equal reports whether e and f denote the same rational expression.
// Both sides are in normal form, so this is component-wise comparison.
func (e *Expr) Equal(f *Expr) bool {
	return e.num.equal(f.num) && e.den.equal(f.den)
}

// IsPolynomial reports whether e lies in Z[R] (denominator 1 after
// reduction). Constant rational denominators count as non-polynomial;
// coefficients of motivic classes are integral whenever they reduce at all.
func (e *Expr) IsPolynomial() bool {
	return e.den.degree() == 0 && e.den.lead().Cmp(intOne) == 0
}

// Frobenius applies the substitution R → −(−R)^k, the twist appearing in
// multi-cover corrections. k must be positive.
func (e *Expr) Frobenius(k int) *Expr {
	if k <= 0 {
		panic("ring: Frobenius order must be positive")
	}
	return reduce(e.num.frobenius(k), e.den.frobenius(k))
}

// EvalRat substitutes the concrete value v for R. The second result is
// false when the reduced denominator vanishes at v: the expression does
// not reduce to a closed value there (a non-generic stability condition);
// the expression itself remains available for inspection.
func (e *Expr) EvalRat(v *big.Rat) (*big.Rat, bool) {
	den := e.den.eval(v)
	if den.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).Quo(e.num.eval(v), den), true
}

// String renders the expression in L when both numerator and denominator
// only involve even powers of R, and in R otherwise.
func (e *Expr) String() string {
	variable, step := "R", 1
	if e.num.onlyEven() && e.den.onlyEven() {
		variable, step = "L", 2
	}
	if e.IsPolynomial() {
		return e.num.format(variable, step)
	}
	num := e.num.format(variable, step)
	den := e.den.format(variable, step)
	if e.num.terms() > 1 {
		num = "(" + num + ")"
	}
	if e.den.terms() > 1 || (e.den.degree() > 0 && e.den.lead().Cmp(intOne) != 0) {
		den = "(" + den + ")"
	}
	return num + "/" + den
}
