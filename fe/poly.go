package fe

import (
	"math"
)

// Legendre evaluates the degree n Legendre polynomial shifted to [0, 1]
// at x, using the standard three term recurrence.
func Legendre(n int, x float64) float64 {
	var (
		t    = 2*x - 1
		Ljm1 = 1.
		Lj   = t
	)
	if n == 0 {
		return Ljm1
	}
	if n == 1 {
		return Lj
	}
	for j := 1; j < n; j++ {
		jf := float64(j)
		Ljp1 := ((2*jf+1)*t*Lj - jf*Ljm1) / (jf + 1)
		Ljm1, Lj = Lj, Ljp1
	}
	return Lj
}

// ILegendre evaluates the degree n integrated Legendre polynomial on
// [0, 1] at x. The fixed values -1 for n == 0 and x for n == 1 extend the
// family below the first true antiderivative. For n >= 2 the value
// vanishes at both endpoints and d/dx ILegendre(n, x) = Legendre(n-1, x).
func ILegendre(n int, x float64) float64 {
	if n == 0 {
		return -1
	}
	if n == 1 {
		return x
	}
	var (
		t    = 2*x - 1
		Ljm2 = 1.
		Ljm1 = t
		Lj   = (3*t*t - 1) / 2
	)
	for j := 2; j < n; j++ {
		jf := float64(j)
		Ljp1 := ((2*jf+1)*t*Lj - jf*Ljm1) / (jf + 1)
		Ljm2, Ljm1, Lj = Ljm1, Lj, Ljp1
	}
	return (Lj - Ljm2) / float64(4*n-2)
}

// Jacobi evaluates the degree n Jacobi polynomial with parameters
// (alpha, 0), shifted to [0, 1], at x.
func Jacobi(n int, alpha, x float64) float64 {
	var (
		Pjm1 = 1.
		Pj   = (2+alpha)*x - 1
	)
	if n == 0 {
		return Pjm1
	}
	if n == 1 {
		return Pj
	}
	for j := 1; j < n; j++ {
		jp1 := float64(j + 1)
		ajp1 := 2 * jp1 * (jp1 + alpha) * (2*jp1 + alpha - 2)
		bjp1 := 2*jp1 + alpha - 1
		cjp1 := (2*jp1 + alpha) * (2*jp1 + alpha - 2)
		djp1 := 2 * (jp1 + alpha - 1) * (jp1 - 1) * (2*jp1 + alpha)
		Pjp1 := (bjp1*(cjp1*(2*x-1)+alpha*alpha)*Pj - djp1*Pjm1) / ajp1
		Pjm1, Pj = Pj, Pjp1
	}
	return Pj
}

// IJacobi evaluates the degree n integrated Jacobi polynomial with
// parameters (alpha, 0) on [0, 1] at x, with the same below-degree
// conventions as ILegendre. For n >= 2 the value vanishes at x = 0 and
// d/dx IJacobi(n, alpha, x) = Jacobi(n-1, alpha, x).
func IJacobi(n int, alpha, x float64) float64 {
	if n == 0 {
		return -1
	}
	if n == 1 {
		return x
	}
	var (
		ajp1P = 2 * 2 * (2 + alpha) * (2*2 + alpha - 2)
		bjp1P = 2*2 + alpha - 1
		cjp1P = (2*2 + alpha) * (2*2 + alpha - 2)
		djp1P = 2 * (2 + alpha - 1) * (2*2 + alpha)
		Pjm2  = 1.
		Pjm1  = (2+alpha)*x - 1
	)
	Pj := (bjp1P*(cjp1P*(2*x-1)+alpha*alpha)*Pjm1 - djp1P*Pjm2) / ajp1P
	for j := 2; j < n; j++ {
		jp1 := float64(j + 1)
		ajp1P = 2 * jp1 * (jp1 + alpha) * (2*jp1 + alpha - 2)
		bjp1P = 2*jp1 + alpha - 1
		cjp1P = (2*jp1 + alpha) * (2*jp1 + alpha - 2)
		djp1P = 2 * (jp1 + alpha - 1) * (jp1 - 1) * (2*jp1 + alpha)
		Pjp1 := (bjp1P*(cjp1P*(2*x-1)+alpha*alpha)*Pj - djp1P*Pjm1) / ajp1P
		Pjm2, Pjm1, Pj = Pjm1, Pj, Pjp1
	}
	var (
		nf  = float64(n)
		anL = (nf + alpha) / ((2*nf + alpha - 1) * (2*nf + alpha))
		bnL = alpha / ((2*nf + alpha - 2) * (2*nf + alpha))
		cnL = (nf - 1) / ((2*nf + alpha - 2) * (2*nf + alpha - 1))
	)
	return anL*Pj + bnL*Pjm1 - cnL*Pjm2
}

// chebyshevNodes returns the n Chebyshev interpolation nodes mapped to
// [0, 1], in ascending order.
func chebyshevNodes(n int) (x []float64) {
	x = make([]float64, n)
	for k := 0; k < n; k++ {
		x[k] = 0.5 * (1 - math.Cos((2*float64(k)+1)*math.Pi/(2*float64(n))))
	}
	return
}
