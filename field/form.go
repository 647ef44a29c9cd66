package field

import (
	kuov "github.com/BackendStack21/k-uov-go"
)

// EvalForm evaluates xᵗAx + bᵗx + c.
func (f Field) EvalForm(q kuov.QuadraticForm, x kuov.Vector) uint32 {
	ax := f.MatVec(q.A, x)
	return f.Add(f.Add(f.Dot(x, ax), f.Dot(q.B, x)), q.C%f.P)
}

// FoldUpper returns the upper-triangular matrix U with xᵗUx = xᵗAx for all x:
// every entry below the diagonal is added to its mirror and cleared.
func (f Field) FoldUpper(a kuov.Matrix) kuov.Matrix {
	if a.Rows != a.Cols {
		panic(ErrDimension)
	}
	u := a.Clone()
	for i := 1; i < u.Rows; i++ {
		for j := 0; j < i; j++ {
			u.Set(j, i, f.Add(u.At(j, i), u.At(i, j)))
			u.Set(i, j, 0)
		}
	}
	return u
}

// IsUpperTriangular reports whether every entry below the diagonal is zero.
func IsUpperTriangular(a kuov.Matrix) bool {
	for i := 1; i < a.Rows; i++ {
		for j := 0; j < i && j < a.Cols; j++ {
			if a.At(i, j) != 0 {
				return false
			}
		}
	}
	return true
}
