// Package central builds the private oil-and-vinegar quadratic system.
//
// Variables 0..o-1 are oil and o..n-1 are vinegar. No form contains an
// oil-times-oil term, so once the vinegar values are fixed every form is
// affine in the oil variables.
package central

import (
	"errors"
	"fmt"
	"io"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
)

// ErrOilOil is returned by CheckStructure when a form has a nonzero
// coefficient in its oil-oil block.
var ErrOilOil = errors.New("central: nonzero oil-oil coefficient")

// Generate samples o quadratic forms in n = o + v variables.
// Each matrix is drawn in full and then has its strict lower triangle and its
// oil-oil block cleared; b and c are unrestricted.
func Generate(f field.Field, o, v int, rng io.Reader) ([]kuov.QuadraticForm, error) {
	n := o + v
	forms := make([]kuov.QuadraticForm, o)
	for k := range forms {
		a, err := f.RandomMatrix(rng, n, n)
		if err != nil {
			return nil, fmt.Errorf("form %d: %w", k, err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i > j || (i < o && j < o) {
					a.Set(i, j, 0)
				}
			}
		}
		b, err := f.RandomVector(rng, n)
		if err != nil {
			return nil, fmt.Errorf("form %d: %w", k, err)
		}
		c, err := f.RandomElement(rng)
		if err != nil {
			return nil, fmt.Errorf("form %d: %w", k, err)
		}
		forms[k] = kuov.QuadraticForm{A: a, B: b, C: c}
	}
	return forms, nil
}

// CheckStructure verifies that there are o forms over n variables and that
// every oil-oil coefficient is zero.
func CheckStructure(forms []kuov.QuadraticForm, o, n int) error {
	if len(forms) != o {
		return fmt.Errorf("%w: %d forms, want %d", field.ErrDimension, len(forms), o)
	}
	for k, q := range forms {
		if q.A.Rows != n || q.A.Cols != n || len(q.A.Data) != n*n || len(q.B) != n {
			return fmt.Errorf("%w: form %d", field.ErrDimension, k)
		}
		for i := 0; i < o; i++ {
			for j := 0; j < o; j++ {
				if q.A.At(i, j) != 0 {
					return fmt.Errorf("%w: form %d at (%d,%d)", ErrOilOil, k, i, j)
				}
			}
		}
	}
	return nil
}

// Linearize substitutes the vinegar values into each form. Row k of L holds
// the coefficients of the oil variables in form k and consts[k] its constant
// term, so form k evaluated at (x_o, vinegar) equals L[k]·x_o + consts[k].
func Linearize(f field.Field, forms []kuov.QuadraticForm, o int, vinegar kuov.Vector) (kuov.Matrix, kuov.Vector) {
	l := kuov.NewMatrix(len(forms), o)
	consts := make(kuov.Vector, len(forms))

	for k, q := range forms {
		n := q.A.Rows
		row := l.Row(k)

		// Oil coefficients: cross terms with vinegar on either side plus b.
		for i := 0; i < o; i++ {
			coef := q.B[i] % f.P
			for j := o; j < n; j++ {
				vj := vinegar[j-o]
				coef = f.Add(coef, f.Mul(q.A.At(i, j), vj))
				coef = f.Add(coef, f.Mul(q.A.At(j, i), vj))
			}
			row[i] = coef
		}

		// Constant: vinegar-vinegar block, vinegar linear part and c.
		constant := q.C % f.P
		for i := o; i < n; i++ {
			vi := vinegar[i-o]
			var inner uint32
			for j := o; j < n; j++ {
				inner = f.Add(inner, f.Mul(q.A.At(i, j), vinegar[j-o]))
			}
			constant = f.Add(constant, f.Mul(vi, inner))
			constant = f.Add(constant, f.Mul(q.B[i], vi))
		}
		consts[k] = constant
	}
	return l, consts
}
