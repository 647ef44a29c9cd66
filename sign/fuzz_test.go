package sign

import (
	"testing"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/maps/public"
	"github.com/BackendStack21/k-uov-go/utils"
)

// FuzzVerify checks that Verify never panics and agrees with direct
// evaluation of the public system for arbitrary signatures and targets.
// Entries outside [0, 31) are always rejected.
func FuzzVerify(f *testing.F) {
	f.Add([]byte{}, []byte{})
	f.Add(make([]byte, 12), []byte{1, 0, 0, 0})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff}, []byte{0xff})
	f.Add(make([]byte, 100), make([]byte, 4))

	kp, err := KeyGen(4, 8, 31, utils.NewShakeReader("fuzz", []byte("key")))
	if err != nil {
		f.Fatal(err)
	}
	gf := field.New(31)

	f.Fuzz(func(t *testing.T, sigData, targetData []byte) {
		sig := &kuov.Signature{X: make(kuov.Vector, len(sigData))}
		for i, b := range sigData {
			sig.X[i] = uint32(b)
		}
		target := make(kuov.Vector, len(targetData))
		for i, b := range targetData {
			target[i] = uint32(b)
		}

		got := Verify(&kp.PublicKey, sig, target)
		if len(sig.X) != 12 || len(target) != 4 {
			if got {
				t.Fatal("Verify accepted mismatched lengths")
			}
			return
		}
		want := inField(sig.X, 31) && inField(target, 31) &&
			equalVec(public.Evaluate(gf, kp.PublicKey.Forms, sig.X), target)
		if got != want {
			t.Fatalf("Verify=%v, evaluation=%v", got, want)
		}
	})
}

// FuzzHashToTarget checks that targets stay in range for any message.
func FuzzHashToTarget(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("message"))
	f.Add(make([]byte, 1000))

	params := kuov.Params{O: 6, V: 12, P: 251}
	f.Fuzz(func(t *testing.T, msg []byte) {
		target, err := HashToTarget([]byte("pk"), msg, params)
		if err != nil {
			t.Fatal(err)
		}
		if len(target) != params.O {
			t.Fatalf("target length %d", len(target))
		}
		for _, y := range target {
			if y >= params.P {
				t.Fatalf("entry %d out of range", y)
			}
		}
	})
}
