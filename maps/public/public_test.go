package public

import (
	"bytes"
	"testing"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/maps/affine"
	"github.com/BackendStack21/k-uov-go/maps/central"
	"github.com/BackendStack21/k-uov-go/utils"
)

func setup(t *testing.T, o, v int, p uint32, label string) (field.Field, []kuov.QuadraticForm, kuov.AffineMap) {
	t.Helper()
	f := field.New(p)
	rng := utils.NewShakeReader("public-test", []byte(label))
	m, err := affine.Generate(f, o+v, rng)
	if err != nil {
		t.Fatal(err)
	}
	forms, err := central.Generate(f, o, v, rng)
	if err != nil {
		t.Fatal(err)
	}
	return f, forms, m
}

func TestCompose_Consistency(t *testing.T) {
	cases := []struct {
		o, v int
		p    uint32
	}{{2, 4, 2}, {2, 2, 3}, {4, 8, 31}, {5, 10, 251}}

	for _, tc := range cases {
		f, forms, m := setup(t, tc.o, tc.v, tc.p, "consistency")
		pub := Compose(f, forms, m)
		if len(pub) != tc.o {
			t.Fatalf("Compose returned %d forms, want %d", len(pub), tc.o)
		}

		rng := utils.NewShakeReader("public-test", []byte("points"))
		for trial := 0; trial < 30; trial++ {
			x, _ := f.RandomVector(rng, tc.o+tc.v)
			want := Evaluate(f, forms, affine.Apply(f, m, x))
			got := Evaluate(f, pub, x)
			for k := range want {
				if got[k] != want[k] {
					t.Fatalf("p=%d form %d: public %d, central∘affine %d", tc.p, k, got[k], want[k])
				}
			}
		}
	}
}

func TestCompose_UpperTriangular(t *testing.T) {
	f, forms, m := setup(t, 3, 6, 31, "upper")
	for k, q := range Compose(f, forms, m) {
		if !field.IsUpperTriangular(q.A) {
			t.Errorf("public form %d is not upper triangular", k)
		}
	}
}

func TestCompose_IdentityMap(t *testing.T) {
	f, forms, _ := setup(t, 2, 3, 31, "identity")
	id := kuov.AffineMap{D: field.Identity(5), E: make(kuov.Vector, 5)}
	pub := Compose(f, forms, id)
	for k := range forms {
		// Central matrices are already upper triangular, so the fold is a no-op.
		for i := range forms[k].A.Data {
			if pub[k].A.Data[i] != forms[k].A.Data[i] {
				t.Fatalf("form %d: A changed under the identity map", k)
			}
		}
		for i := range forms[k].B {
			if pub[k].B[i] != forms[k].B[i] {
				t.Fatalf("form %d: b changed under the identity map", k)
			}
		}
		if pub[k].C != forms[k].C {
			t.Fatalf("form %d: c changed under the identity map", k)
		}
	}
}

func TestCompose_Deterministic(t *testing.T) {
	f, forms, m := setup(t, 4, 8, 251, "det")
	a := Fingerprint(kuov.PublicKey{Forms: Compose(f, forms, m)})
	b := Fingerprint(kuov.PublicKey{Forms: Compose(f, forms, m)})
	if !bytes.Equal(a, b) {
		t.Error("Compose is not deterministic")
	}
}

func TestFingerprint(t *testing.T) {
	f, forms, m := setup(t, 2, 3, 31, "fp")
	pk := kuov.PublicKey{Forms: Compose(f, forms, m), Params: kuov.Params{O: 2, V: 3, P: 31}}
	h := Fingerprint(pk)
	if len(h) != 32 {
		t.Fatalf("fingerprint length %d", len(h))
	}
	pk.Forms[0].C = f.Add(pk.Forms[0].C, 1)
	if bytes.Equal(h, Fingerprint(pk)) {
		t.Error("fingerprint ignores the constant term")
	}
}
