// Package affine generates and applies the invertible affine map x -> Dx + e
// that hides the structure of the central system.
package affine

import (
	"errors"
	"fmt"
	"io"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/utils"
)

// MaxAttempts bounds the number of matrices sampled while looking for an
// invertible D.
const MaxAttempts = 1000

// ErrDegenerateKeygen is returned when no invertible matrix was found within
// MaxAttempts draws.
var ErrDegenerateKeygen = errors.New("affine: no invertible matrix found")

// Generate samples an invertible n x n matrix D and a vector e from rng.
// D is resampled until det(D) != 0, then e is drawn once.
func Generate(f field.Field, n int, rng io.Reader) (kuov.AffineMap, error) {
	if err := utils.CheckPositive(n, "dimension"); err != nil {
		return kuov.AffineMap{}, err
	}

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		d, err := f.RandomMatrix(rng, n, n)
		if err != nil {
			return kuov.AffineMap{}, fmt.Errorf("sample D: %w", err)
		}
		det, err := f.Det(d)
		if err != nil {
			return kuov.AffineMap{}, err
		}
		if det == 0 {
			utils.Debugf("affine", "attempt %d: det(D) = 0, resampling", attempt)
			continue
		}

		e, err := f.RandomVector(rng, n)
		if err != nil {
			return kuov.AffineMap{}, fmt.Errorf("sample e: %w", err)
		}
		return kuov.AffineMap{D: d, E: e}, nil
	}
	return kuov.AffineMap{}, fmt.Errorf("%w after %d attempts", ErrDegenerateKeygen, MaxAttempts)
}

// Apply computes Dx + e.
func Apply(f field.Field, m kuov.AffineMap, x kuov.Vector) kuov.Vector {
	return f.VecAdd(f.MatVec(m.D, x), m.E)
}

// InvertApply returns the x with Dx + e = y. It fails with field.ErrSingular
// only if D was corrupted after generation.
func InvertApply(f field.Field, m kuov.AffineMap, y kuov.Vector) (kuov.Vector, error) {
	if len(y) != len(m.E) {
		return nil, field.ErrDimension
	}
	return f.Solve(m.D, f.VecSub(y, m.E))
}

// Validate checks shapes and that D is invertible.
func Validate(f field.Field, m kuov.AffineMap, n int) error {
	if m.D.Rows != n || m.D.Cols != n || len(m.D.Data) != n*n || len(m.E) != n {
		return field.ErrDimension
	}
	det, err := f.Det(m.D)
	if err != nil {
		return err
	}
	if det == 0 {
		return field.ErrSingular
	}
	return nil
}
