// Package public composes the central system with the affine map and
// evaluates the resulting public quadratic system.
package public

import (
	"sync"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/utils"
)

// DomainFingerprint separates public key hashes from other SHA3 uses.
const DomainFingerprint = "kuov-public-key-v1"

// Compose returns the forms P_k(x) = F_k(Dx + e), one goroutine per form.
// Output order matches input order.
func Compose(f field.Field, forms []kuov.QuadraticForm, m kuov.AffineMap) []kuov.QuadraticForm {
	out := make([]kuov.QuadraticForm, len(forms))
	dt := field.Transpose(m.D)

	var wg sync.WaitGroup
	for k := range forms {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			out[k] = composeForm(f, forms[k], m, dt)
		}(k)
	}
	wg.Wait()
	return out
}

// composeForm substitutes x = Dx' + e into xᵗAx + bᵗx + c:
//
//	A' = DᵗAD
//	b' = (eᵗ(Aᵗ + A) + bᵗ)D
//	c' = (eᵗA + bᵗ)e + c
//
// and folds A' to upper-triangular form.
func composeForm(f field.Field, q kuov.QuadraticForm, m kuov.AffineMap, dt kuov.Matrix) kuov.QuadraticForm {
	a := f.FoldUpper(f.MatMul(f.MatMul(dt, q.A), m.D))

	eA := f.VecMat(m.E, q.A)   // eᵗA
	eAt := f.MatVec(q.A, m.E)  // eᵗAᵗ = (Ae)ᵗ
	eAb := f.VecAdd(eA, q.B)   // eᵗA + bᵗ
	u := f.VecAdd(eAt, eAb)    // eᵗ(Aᵗ + A) + bᵗ
	b := f.VecMat(u, m.D)

	c := f.Add(f.Dot(eAb, m.E), q.C%f.P)
	return kuov.QuadraticForm{A: a, B: b, C: c}
}

// Evaluate returns the value of every form at x.
func Evaluate(f field.Field, forms []kuov.QuadraticForm, x kuov.Vector) kuov.Vector {
	out := make(kuov.Vector, len(forms))
	for k, q := range forms {
		out[k] = f.EvalForm(q, x)
	}
	return out
}

// Fingerprint is the SHA3-256 hash of the parameters and every coefficient of
// the public system.
func Fingerprint(pk kuov.PublicKey) []byte {
	inputs := make([][]uint32, 0, 1+3*len(pk.Forms))
	inputs = append(inputs, []uint32{uint32(pk.Params.O), uint32(pk.Params.V), pk.Params.P})
	for _, q := range pk.Forms {
		inputs = append(inputs, q.A.Data, q.B, []uint32{q.C})
	}
	return utils.HashUint32s(DomainFingerprint, inputs...)
}
