package field

import (
	"io"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/utils"
)

// RandomElement draws a uniform element of GF(p) from r.
func (f Field) RandomElement(r io.Reader) (uint32, error) {
	return utils.RandomUint32From(r, f.P)
}

// RandomVector draws n uniform elements from r.
func (f Field) RandomVector(r io.Reader, n int) (kuov.Vector, error) {
	v := make(kuov.Vector, n)
	for i := range v {
		x, err := f.RandomElement(r)
		if err != nil {
			return nil, err
		}
		v[i] = x
	}
	return v, nil
}

// RandomMatrix draws a uniform rows x cols matrix from r, row by row.
func (f Field) RandomMatrix(r io.Reader, rows, cols int) (kuov.Matrix, error) {
	size, err := utils.SafeMultiply(rows, cols)
	if err != nil {
		return kuov.Matrix{}, err
	}
	if err := utils.CheckLength(size, utils.MaxDimension*utils.MaxDimension); err != nil {
		return kuov.Matrix{}, err
	}
	data, err := f.RandomVector(r, size)
	if err != nil {
		return kuov.Matrix{}, err
	}
	return kuov.Matrix{Rows: rows, Cols: cols, Data: data}, nil
}
