package ring

import (
	"math/big"
	"strings"
)

// poly is a dense integer-coefficient polynomial in R.
// coef[i] holds the coefficient of R^i. Invariant: the slice is either
// empty (the zero polynomial) or its last element is nonzero.
type poly struct {
	coef []*big.Int
}

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
)

func newPoly(coefs ...int64) poly {
	p := poly{coef: make([]*big.Int, len(coefs))}
	for i, c := range coefs {
		p.coef[i] = big.NewInt(c)
	}
	return p.trim()
}

// monomial returns c·R^n for n ≥ 0.
func monomial(c *big.Int, n int) poly {
	if c.Sign() == 0 {
		return poly{}
	}
	coef := make([]*big.Int, n+1)
	for i := 0; i < n; i++ {
		coef[i] = intZero
	}
	coef[n] = new(big.Int).Set(c)
	return poly{coef: coef}
}

func (p poly) trim() poly {
	n := len(p.coef)
	for n > 0 && p.coef[n-1].Sign() == 0 {
		n--
	}
	return poly{coef: p.coef[:n]}
}

func (p poly) isZero() bool { return len(p.coef) == 0 }

// degree returns -1 for the zero polynomial.
func (p poly) degree() int { return len(p.coef) - 1 }

func (p poly) at(i int) *big.Int {
	if i < 0 || i >= len(p.coef) {
		return intZero
	}
	return p.coef[i]
}

func (p poly) lead() *big.Int {
	if p.isZero() {
		return intZero
	}
	return p.coef[len(p.coef)-1]
}

func (p poly) clone() poly {
	coef := make([]*big.Int, len(p.coef))
	for i, c := range p.coef {
		coef[i] = new(big.Int).Set(c)
	}
	return poly{coef: coef}
}

func (p poly) equal(q poly) bool {
	if len(p.coef) != len(q.coef) {
		return false
	}
	for i := range p.coef {
		if p.coef[i].Cmp(q.coef[i]) != 0 {
			return false
		}
	}
	return true
}

func (p poly) add(q poly) poly {
	n := len(p.coef)
	if len(q.coef) > n {
		n = len(q.coef)
	}
	coef := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		coef[i] = new(big.Int).Add(p.at(i), q.at(i))
	}
	return poly{coef: coef}.trim()
}

func (p poly) neg() poly {
	coef := make([]*big.Int, len(p.coef))
	for i, c := range p.coef {
		coef[i] = new(big.Int).Neg(c)
	}
	return poly{coef: coef}
}

func (p poly) sub(q poly) poly { return p.add(q.neg()) }

func (p poly) mul(q poly) poly {
	if p.isZero() || q.isZero() {
		return poly{}
	}
	coef := make([]*big.Int, len(p.coef)+len(q.coef)-1)
	for i := range coef {
		coef[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, a := range p.coef {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.coef {
			if b.Sign() == 0 {
				continue
			}
			coef[i+j].Add(coef[i+j], tmp.Mul(a, b))
		}
	}
	return poly{coef: coef}.trim()
}

func (p poly) scale(c *big.Int) poly {
	if c.Sign() == 0 {
		return poly{}
	}
	coef := make([]*big.Int, len(p.coef))
	for i, a := range p.coef {
		coef[i] = new(big.Int).Mul(a, c)
	}
	return poly{coef: coef}
}

// content returns the (non-negative) GCD of all coefficients, 0 for zero.
func (p poly) content() *big.Int {
	g := new(big.Int)
	for _, c := range p.coef {
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
		if g.Cmp(intOne) == 0 {
			return g
		}
	}
	return g
}

// divContent divides every coefficient by c, which must divide exactly.
func (p poly) divContent(c *big.Int) poly {
	coef := make([]*big.Int, len(p.coef))
	for i, a := range p.coef {
		coef[i] = new(big.Int).Quo(a, c)
	}
	return poly{coef: coef}
}

// primitive returns the primitive part of p with positive leading
// coefficient. The zero polynomial is returned unchanged.
func (p poly) primitive() poly {
	if p.isZero() {
		return p
	}
	c := p.content()
	if p.lead().Sign() < 0 {
		c.Neg(c)
	}
	return p.divContent(c)
}

// pseudoRem computes the pseudo-remainder of p by q (q nonzero):
// lc(q)^(deg p − deg q + 1)·p = s·q + r with deg r < deg q.
func (p poly) pseudoRem(q poly) poly {
	d := p.degree() - q.degree()
	if d < 0 {
		return p
	}
	lead := q.lead()
	r := p.clone()
	for r.degree() >= q.degree() && !r.isZero() {
		shift := r.degree() - q.degree()
		c := new(big.Int).Set(r.lead())
		r = r.scale(lead).sub(q.mul(monomial(c, shift)))
		r = r.trim()
	}
	return r
}

// gcd returns the primitive GCD via a primitive pseudo-remainder sequence.
func (p poly) gcd(q poly) poly {
	a, b := p.primitive(), q.primitive()
	for !b.isZero() {
		r := a.pseudoRem(b).primitive()
		a, b = b, r
	}
	if a.isZero() {
		return a
	}
	return a.primitive()
}

// exactQuo divides p by q, which must divide exactly; ok is false otherwise.
func (p poly) exactQuo(q poly) (poly, bool) {
	if q.isZero() {
		return poly{}, false
	}
	if p.isZero() {
		return poly{}, true
	}
	quoCoef := make([]*big.Int, p.degree()-q.degree()+1)
	if len(quoCoef) <= 0 {
		return poly{}, false
	}
	r := p.clone()
	lead := q.lead()
	for i := len(quoCoef) - 1; i >= 0; i-- {
		c := r.at(i + q.degree())
		quo, rem := new(big.Int).QuoRem(c, lead, new(big.Int))
		if rem.Sign() != 0 {
			return poly{}, false
		}
		quoCoef[i] = quo
		if quo.Sign() != 0 {
			r = r.sub(q.mul(monomial(quo, i)))
		}
	}
	if !r.isZero() {
		return poly{}, false
	}
	return poly{coef: quoCoef}.trim(), true
}

// eval evaluates p at a rational value of R.
func (p poly) eval(v *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.coef) - 1; i >= 0; i-- {
		acc.Mul(acc, v)
		acc.Add(acc, new(big.Rat).SetInt(p.coef[i]))
	}
	return acc
}

// frobenius applies R → −(−R)^k coefficient-wise: c·R^m becomes
// c·(−1)^{m(k+1)}·R^{km}.
func (p poly) frobenius(k int) poly {
	if p.isZero() {
		return p
	}
	coef := make([]*big.Int, k*p.degree()+1)
	for i := range coef {
		coef[i] = intZero
	}
	for m, c := range p.coef {
		if c.Sign() == 0 {
			continue
		}
		v := new(big.Int).Set(c)
		if k%2 == 0 && m%2 == 1 {
			v.Neg(v)
		}
		coef[k*m] = v
	}
	return poly{coef: coef}.trim()
}

// terms counts the nonzero monomials.
func (p poly) terms() int {
	n := 0
	for _, c := range p.coef {
		if c.Sign() != 0 {
			n++
		}
	}
	return n
}

// onlyEven reports whether every monomial has an even power of R,
// i.e. the polynomial lies in Z[L].
func (p poly) onlyEven() bool {
	for i, c := range p.coef {
		if i%2 == 1 && c.Sign() != 0 {
			return false
		}
	}
	return true
}

// format writes the polynomial using the given variable name and exponent
// step (step 2 prints in L, halving exponents).
func (p poly) format(variable string, step int) string {
	if p.isZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.coef) - 1; i >= 0; i-- {
		c := p.coef[i]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(c)
		switch {
		case first && c.Sign() < 0:
			b.WriteString("-")
		case !first && c.Sign() < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false
		exp := i / step
		switch {
		case exp == 0:
			b.WriteString(abs.String())
		case abs.Cmp(intOne) != 0:
			b.WriteString(abs.String())
			b.WriteString("*")
			fallthrough
		default:
			b.WriteString(variable)
			if exp > 1 {
				b.WriteString("^")
				b.WriteString(itoa(exp))
			}
		}
	}
	return b.String()
}

func itoa(n int) string {
	return big.NewInt(int64(n)).String()
}
