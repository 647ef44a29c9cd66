// Package field implements arithmetic over the prime field GF(p) together with
// the dense linear algebra the UOV maps are built from.
//
// Elements are uint32 values in [0, p) with p < 2^31. Every product is formed
// in uint64 and reduced immediately, so no intermediate result can overflow.
package field

import (
	"errors"
)

var (
	// ErrNotInvertible is returned when inverting zero or a non-unit.
	ErrNotInvertible = errors.New("field: element not invertible")

	// ErrSingular is returned when a linear system has no unique solution.
	ErrSingular = errors.New("field: singular matrix")

	// ErrDimension is returned when operand shapes do not match.
	ErrDimension = errors.New("field: dimension mismatch")
)

// Field is GF(p) for a prime p. Construct it with New; the zero value has
// P == 0 and every operation on it panics.
type Field struct {
	P uint32
}

// New returns the field with modulus p. The caller is responsible for p being
// prime; core.ValidateParams checks it for parameter sets.
func New(p uint32) Field {
	if p < 2 {
		panic("field: modulus must be at least 2")
	}
	return Field{P: p}
}

// Reduce maps an arbitrary unsigned value into [0, p).
func (f Field) Reduce(x uint64) uint32 {
	return uint32(x % uint64(f.P))
}

// FromInt maps a signed value into [0, p).
func (f Field) FromInt(x int64) uint32 {
	r := x % int64(f.P)
	if r < 0 {
		r += int64(f.P)
	}
	return uint32(r)
}

// Add returns a + b mod p.
func (f Field) Add(a, b uint32) uint32 {
	return uint32((uint64(a) + uint64(b)) % uint64(f.P))
}

// Sub returns a - b mod p.
func (f Field) Sub(a, b uint32) uint32 {
	return uint32((uint64(a) + uint64(f.P) - uint64(b)%uint64(f.P)) % uint64(f.P))
}

// Mul returns a * b mod p.
func (f Field) Mul(a, b uint32) uint32 {
	return uint32(uint64(a) * uint64(b) % uint64(f.P))
}

// Neg returns -a mod p.
func (f Field) Neg(a uint32) uint32 {
	return f.Sub(0, a)
}

// Inv returns the multiplicative inverse of a using the extended Euclidean
// algorithm.
func (f Field) Inv(a uint32) (uint32, error) {
	a %= f.P
	if a == 0 {
		return 0, ErrNotInvertible
	}
	t, newT := int64(0), int64(1)
	r, newR := int64(f.P), int64(a)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, ErrNotInvertible
	}
	return f.FromInt(t), nil
}

// mulAdd returns acc + a*b reduced. acc must already be reduced.
func (f Field) mulAdd(acc, a, b uint32) uint32 {
	return uint32((uint64(acc) + uint64(a)*uint64(b)) % uint64(f.P))
}
