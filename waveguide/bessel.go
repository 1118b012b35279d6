package waveguide

import (
	"fmt"
	"math"
)

const (
	zeroScanStep  = 0.05
	zeroTolerance = 1e-13
)

// BesselJ returns J_n(x), the Bessel function of the first kind.
func BesselJ(n int, x float64) float64 {
	return math.Jn(n, x)
}

// BesselJPrime returns dJ_n/dx.
func BesselJPrime(n int, x float64) float64 {
	if n == 0 {
		return -math.J1(x)
	}
	return (math.Jn(n-1, x) - math.Jn(n+1, x)) / 2
}

// BesselJPrimeZero returns the p-th positive root of J'_n. The trivial
// root at x = 0 is never counted.
func BesselJPrimeZero(n, p int) (float64, error) {
	if n < 0 || p < 1 {
		return 0, fmt.Errorf("%w: no root %d of J'_%d", ErrInvalidModeCombination, p, n)
	}

	// Roots of J'_n are spaced by roughly π, so a fixed step well below
	// that cannot step over a sign change.
	lo := zeroScanStep
	flo := BesselJPrime(n, lo)
	for found := 0; ; {
		hi := lo + zeroScanStep
		fhi := BesselJPrime(n, hi)
		// flo is zero only after an exact hit or while J'_n underflows
		// near the origin for large n; neither starts a new root.
		if flo != 0 && (fhi == 0 || math.Signbit(flo) != math.Signbit(fhi)) {
			found++
			if found == p {
				if fhi == 0 {
					return hi, nil
				}
				return bisect(n, lo, hi, flo), nil
			}
		}
		lo, flo = hi, fhi
	}
}

func bisect(n int, lo, hi, flo float64) float64 {
	for hi-lo > zeroTolerance*hi {
		mid := (lo + hi) / 2
		fmid := BesselJPrime(n, mid)
		if fmid == 0 {
			return mid
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
