package sign

import (
	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/maps/public"
)

// Verify reports whether the public system maps sig to target. Malformed
// inputs, including entries outside [0, p), yield false rather than an error.
func Verify(pk *kuov.PublicKey, sig *kuov.Signature, target kuov.Vector) bool {
	if pk == nil || sig == nil {
		return false
	}
	params := pk.Params
	n := params.N()
	if params.P < 2 || params.O <= 0 || params.V <= 0 {
		return false
	}
	if len(sig.X) != n || len(target) != params.O || len(pk.Forms) != params.O {
		return false
	}
	for _, q := range pk.Forms {
		if q.A.Rows != n || q.A.Cols != n || len(q.A.Data) != n*n || len(q.B) != n {
			return false
		}
	}

	if !inField(sig.X, params.P) || !inField(target, params.P) {
		return false
	}

	f := field.New(params.P)
	got := public.Evaluate(f, pk.Forms, sig.X)
	for k := range got {
		if got[k] != target[k] {
			return false
		}
	}
	return true
}

func inField(v kuov.Vector, p uint32) bool {
	for _, x := range v {
		if x >= p {
			return false
		}
	}
	return true
}
