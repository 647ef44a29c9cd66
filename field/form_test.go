package field

import (
	"testing"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/utils"
)

func TestEvalForm(t *testing.T) {
	f := New(11)
	// x0^2 + 2 x0 x1 + 3 x1 + 4
	q := kuov.QuadraticForm{
		A: matrix(2, 2, 1, 2, 0, 0),
		B: kuov.Vector{0, 3},
		C: 4,
	}
	x := kuov.Vector{2, 5}
	want := uint32((4 + 2*2*5 + 3*5 + 4) % 11)
	if got := f.EvalForm(q, x); got != want {
		t.Errorf("EvalForm = %d, want %d", got, want)
	}
}

func TestFoldUpper(t *testing.T) {
	f := New(31)
	r := utils.NewShakeReader("test", []byte("fold"))
	a, _ := f.RandomMatrix(r, 5, 5)
	u := f.FoldUpper(a)
	if !IsUpperTriangular(u) {
		t.Fatal("FoldUpper result is not upper triangular")
	}
	if IsUpperTriangular(a) {
		t.Fatal("random matrix unexpectedly upper triangular")
	}
	for i := 0; i < 20; i++ {
		x, _ := f.RandomVector(r, 5)
		qa := kuov.QuadraticForm{A: a, B: make(kuov.Vector, 5)}
		qu := kuov.QuadraticForm{A: u, B: make(kuov.Vector, 5)}
		if f.EvalForm(qa, x) != f.EvalForm(qu, x) {
			t.Fatal("FoldUpper changed the quadratic form")
		}
	}
}

func TestRandomMatrix_Limits(t *testing.T) {
	f := New(7)
	r := utils.NewShakeReader("test", nil)
	if _, err := f.RandomMatrix(r, -1, 2); err == nil {
		t.Error("expected error for negative rows")
	}
	if _, err := f.RandomMatrix(r, utils.MaxDimension+1, utils.MaxDimension); err == nil {
		t.Error("expected error for oversized matrix")
	}
	m, err := f.RandomMatrix(r, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range m.Data {
		if x >= 7 {
			t.Fatalf("entry %d out of range", x)
		}
	}
}
