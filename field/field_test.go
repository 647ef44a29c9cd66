package field

import (
	"errors"
	"testing"
)

func TestArithmetic(t *testing.T) {
	f := New(31)
	for a := uint32(0); a < 31; a++ {
		for b := uint32(0); b < 31; b++ {
			if got, want := f.Add(a, b), (a+b)%31; got != want {
				t.Fatalf("Add(%d,%d) = %d, want %d", a, b, got, want)
			}
			if got, want := f.Sub(a, b), (a+31-b)%31; got != want {
				t.Fatalf("Sub(%d,%d) = %d, want %d", a, b, got, want)
			}
			if got, want := f.Mul(a, b), (a*b)%31; got != want {
				t.Fatalf("Mul(%d,%d) = %d, want %d", a, b, got, want)
			}
		}
		if f.Add(a, f.Neg(a)) != 0 {
			t.Errorf("a + (-a) != 0 for a=%d", a)
		}
	}
}

func TestInv(t *testing.T) {
	f := New(31)
	for a := uint32(1); a < 31; a++ {
		inv, err := f.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%d) failed: %v", a, err)
		}
		if f.Mul(a, inv) != 1 {
			t.Errorf("Inv(%d) = %d is not an inverse", a, inv)
		}
	}

	if _, err := f.Inv(0); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Inv(0) = %v, want ErrNotInvertible", err)
	}
	if _, err := f.Inv(62); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Inv(62) = %v, want ErrNotInvertible", err)
	}
}

func TestInv_LargePrime(t *testing.T) {
	f := New(2147483647)
	for _, a := range []uint32{1, 2, 12345, 2147483646} {
		inv, err := f.Inv(a)
		if err != nil {
			t.Fatal(err)
		}
		if f.Mul(a, inv) != 1 {
			t.Errorf("Inv(%d) = %d is not an inverse", a, inv)
		}
	}
}

func TestGF2(t *testing.T) {
	f := New(2)
	if f.Add(1, 1) != 0 || f.Sub(0, 1) != 1 || f.Mul(1, 1) != 1 {
		t.Error("GF(2) arithmetic is wrong")
	}
	inv, err := f.Inv(1)
	if err != nil || inv != 1 {
		t.Errorf("Inv(1) in GF(2) = %d, %v", inv, err)
	}
}

func TestFromInt(t *testing.T) {
	f := New(7)
	cases := map[int64]uint32{-1: 6, -7: 0, -8: 6, 0: 0, 13: 6}
	for in, want := range cases {
		if got := f.FromInt(in); got != want {
			t.Errorf("FromInt(%d) = %d, want %d", in, got, want)
		}
	}
	if f.Reduce(1<<40) != uint32((uint64(1)<<40)%7) {
		t.Error("Reduce mismatch")
	}
}

func TestNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(1) should panic")
		}
	}()
	New(1)
}

func TestZeroField_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("operation on Field{} should panic")
		}
	}()
	var f Field
	f.Add(1, 2)
}
