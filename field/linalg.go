package field

import (
	"runtime"
	"sync"

	kuov "github.com/BackendStack21/k-uov-go"
)

// parallelRows is the row count below which matrix products stay sequential.
const parallelRows = 64

// =============================================================================
// Vectors
// =============================================================================

// VecAdd returns a + b.
func (f Field) VecAdd(a, b kuov.Vector) kuov.Vector {
	checkLen(len(a), len(b))
	result := make(kuov.Vector, len(a))
	for i := range a {
		result[i] = f.Add(a[i], b[i])
	}
	return result
}

// VecSub returns a - b.
func (f Field) VecSub(a, b kuov.Vector) kuov.Vector {
	checkLen(len(a), len(b))
	result := make(kuov.Vector, len(a))
	for i := range a {
		result[i] = f.Sub(a[i], b[i])
	}
	return result
}

// VecScale multiplies every entry of a by s.
func (f Field) VecScale(s uint32, a kuov.Vector) kuov.Vector {
	result := make(kuov.Vector, len(a))
	for i := range a {
		result[i] = f.Mul(s, a[i])
	}
	return result
}

// Dot computes the inner product of two vectors.
func (f Field) Dot(a, b kuov.Vector) uint32 {
	checkLen(len(a), len(b))
	var sum uint32
	for i := range a {
		sum = f.mulAdd(sum, a[i], b[i])
	}
	return sum
}

// =============================================================================
// Matrices
// =============================================================================

// Identity returns the n x n identity matrix.
func Identity(n int) kuov.Matrix {
	m := kuov.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Transpose returns mᵗ.
func Transpose(m kuov.Matrix) kuov.Matrix {
	t := kuov.NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t
}

// MatAdd returns a + b. It panics with ErrDimension on mismatched shapes.
func (f Field) MatAdd(a, b kuov.Matrix) kuov.Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(ErrDimension)
	}
	result := kuov.NewMatrix(a.Rows, a.Cols)
	for i := range a.Data {
		result.Data[i] = f.Add(a.Data[i], b.Data[i])
	}
	return result
}

// MatScale multiplies every entry of m by s.
func (f Field) MatScale(s uint32, m kuov.Matrix) kuov.Matrix {
	result := kuov.NewMatrix(m.Rows, m.Cols)
	for i := range m.Data {
		result.Data[i] = f.Mul(s, m.Data[i])
	}
	return result
}

// MatVec computes m·x.
func (f Field) MatVec(m kuov.Matrix, x kuov.Vector) kuov.Vector {
	checkLen(m.Cols, len(x))
	result := make(kuov.Vector, m.Rows)
	for i := 0; i < m.Rows; i++ {
		result[i] = f.Dot(m.Row(i), x)
	}
	return result
}

// VecMat computes xᵗ·m as a vector.
func (f Field) VecMat(x kuov.Vector, m kuov.Matrix) kuov.Vector {
	checkLen(m.Rows, len(x))
	result := make(kuov.Vector, m.Cols)
	for i := 0; i < m.Rows; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		row := m.Row(i)
		for j := range result {
			result[j] = f.mulAdd(result[j], xi, row[j])
		}
	}
	return result
}

// MatMul computes a·b. Rows are split across GOMAXPROCS workers once the
// result has at least 64 rows; the output does not depend on the split.
func (f Field) MatMul(a, b kuov.Matrix) kuov.Matrix {
	if a.Cols != b.Rows {
		panic(ErrDimension)
	}
	result := kuov.NewMatrix(a.Rows, b.Cols)
	numWorkers := runtime.GOMAXPROCS(0)

	mulRows := func(start, end int) {
		for i := start; i < end; i++ {
			out := result.Row(i)
			for k := 0; k < a.Cols; k++ {
				aik := a.At(i, k)
				if aik == 0 {
					continue
				}
				row := b.Row(k)
				for j := range out {
					out[j] = f.mulAdd(out[j], aik, row[j])
				}
			}
		}
	}

	if a.Rows < parallelRows || numWorkers <= 1 {
		mulRows(0, a.Rows)
		return result
	}

	var wg sync.WaitGroup
	rowsPerWorker := (a.Rows + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > a.Rows {
			end = a.Rows
		}
		if start >= a.Rows {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			mulRows(start, end)
		}(start, end)
	}
	wg.Wait()
	return result
}

// =============================================================================
// Elimination
// =============================================================================

// Det returns the determinant of a square matrix.
func (f Field) Det(m kuov.Matrix) (uint32, error) {
	if m.Rows != m.Cols {
		return 0, ErrDimension
	}
	n := m.Rows
	w := m.Clone()
	for i := range w.Data {
		w.Data[i] %= f.P
	}
	det := uint32(1)

	for col := 0; col < n; col++ {
		pivot := findPivot(w, col, col)
		if pivot < 0 {
			return 0, nil
		}
		if pivot != col {
			swapRows(w, pivot, col)
			det = f.Neg(det)
		}
		pv := w.At(col, col)
		det = f.Mul(det, pv)
		inv, err := f.Inv(pv)
		if err != nil {
			return 0, err
		}
		for r := col + 1; r < n; r++ {
			factor := f.Mul(w.At(r, col), inv)
			if factor == 0 {
				continue
			}
			f.subRow(w, r, col, factor, col)
		}
	}
	return det, nil
}

// Solve returns the unique x with a·x = b, or ErrSingular when a is not
// invertible. Neither argument is modified.
func (f Field) Solve(a kuov.Matrix, b kuov.Vector) (kuov.Vector, error) {
	if a.Rows != a.Cols || len(b) != a.Rows {
		return nil, ErrDimension
	}
	n := a.Rows

	// Augmented matrix [a | b]
	w := kuov.NewMatrix(n, n+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w.Set(i, j, a.At(i, j)%f.P)
		}
		w.Set(i, n, b[i]%f.P)
	}

	for col := 0; col < n; col++ {
		pivot := findPivot(w, col, col)
		if pivot < 0 {
			return nil, ErrSingular
		}
		swapRows(w, pivot, col)

		inv, err := f.Inv(w.At(col, col))
		if err != nil {
			return nil, ErrSingular
		}
		row := w.Row(col)
		for j := col; j <= n; j++ {
			row[j] = f.Mul(row[j], inv)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := w.At(r, col)
			if factor == 0 {
				continue
			}
			f.subRow(w, r, col, factor, col)
		}
	}

	x := make(kuov.Vector, n)
	for i := 0; i < n; i++ {
		x[i] = w.At(i, n)
	}
	return x, nil
}

// subRow sets row dst -= factor * row src for columns from on.
func (f Field) subRow(m kuov.Matrix, dst, src int, factor uint32, from int) {
	d := m.Row(dst)
	s := m.Row(src)
	for j := from; j < m.Cols; j++ {
		d[j] = f.Sub(d[j], f.Mul(factor, s[j]))
	}
}

func findPivot(m kuov.Matrix, col, from int) int {
	for r := from; r < m.Rows; r++ {
		if m.At(r, col) != 0 {
			return r
		}
	}
	return -1
}

func swapRows(m kuov.Matrix, i, j int) {
	if i == j {
		return
	}
	ri, rj := m.Row(i), m.Row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

func checkLen(a, b int) {
	if a != b {
		panic(ErrDimension)
	}
}
