package sign

import (
	"errors"
	"fmt"
	"io"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/core"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/maps/affine"
	"github.com/BackendStack21/k-uov-go/maps/central"
	"github.com/BackendStack21/k-uov-go/utils"
)

// MaxSignAttempts is the number of vinegar draws tried before giving up.
const MaxSignAttempts = 10

var (
	// ErrSigningFailed is returned when every vinegar draw gave a singular
	// oil system.
	ErrSigningFailed = errors.New("sign: no solvable oil system")

	// ErrKeyCorrupted is returned when the private key is malformed or its
	// affine matrix cannot be inverted.
	ErrKeyCorrupted = errors.New("sign: private key corrupted")

	// ErrInvalidTarget is returned for a target of the wrong length or with
	// entries outside [0, p).
	ErrInvalidTarget = errors.New("sign: invalid target")
)

// Sign finds x' with P(x') = target, drawing vinegar values from rng.
func Sign(sk *kuov.PrivateKey, target kuov.Vector, rng io.Reader) (*kuov.Signature, error) {
	sig, _, err := SignWithAttempts(sk, target, rng)
	return sig, err
}

// SignWithAttempts is Sign that also reports how many vinegar draws were used.
func SignWithAttempts(sk *kuov.PrivateKey, target kuov.Vector, rng io.Reader) (*kuov.Signature, int, error) {
	if err := checkPrivateKey(sk); err != nil {
		return nil, 0, err
	}
	params := sk.Params
	f := field.New(params.P)

	if len(target) != params.O {
		return nil, 0, fmt.Errorf("%w: length %d, want %d", ErrInvalidTarget, len(target), params.O)
	}
	for _, y := range target {
		if y >= params.P {
			return nil, 0, fmt.Errorf("%w: entry %d not below %d", ErrInvalidTarget, y, params.P)
		}
	}

	for attempt := 1; attempt <= MaxSignAttempts; attempt++ {
		vinegar, err := f.RandomVector(rng, params.V)
		if err != nil {
			return nil, attempt, fmt.Errorf("sample vinegar: %w", err)
		}

		l, consts := central.Linearize(f, sk.Central, params.O, vinegar)
		oil, err := f.Solve(l, f.VecSub(target, consts))
		if errors.Is(err, field.ErrSingular) {
			utils.Debugf("sign", "attempt %d: oil system singular, resampling vinegar", attempt)
			utils.ZeroizeUint32(vinegar)
			continue
		}
		if err != nil {
			return nil, attempt, err
		}

		x := append(oil, vinegar...)
		sig, err := affine.InvertApply(f, sk.Affine, x)
		utils.ZeroizeUint32(x)
		utils.ZeroizeUint32(vinegar)
		if err != nil {
			return nil, attempt, fmt.Errorf("%w: %v", ErrKeyCorrupted, err)
		}
		return &kuov.Signature{X: sig}, attempt, nil
	}

	return nil, MaxSignAttempts, fmt.Errorf("%w after %d attempts", ErrSigningFailed, MaxSignAttempts)
}

// checkPrivateKey rejects keys whose shapes or trapdoor structure are broken.
// Invertibility of D is left to the final inversion step.
func checkPrivateKey(sk *kuov.PrivateKey) error {
	if sk == nil {
		return fmt.Errorf("%w: nil key", ErrKeyCorrupted)
	}
	params := sk.Params
	if err := core.ValidateParams(params); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyCorrupted, err)
	}
	n := params.N()
	d := sk.Affine.D
	if d.Rows != n || d.Cols != n || len(d.Data) != n*n || len(sk.Affine.E) != n {
		return fmt.Errorf("%w: affine map shape", ErrKeyCorrupted)
	}
	if err := central.CheckStructure(sk.Central, params.O, n); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyCorrupted, err)
	}
	return nil
}
