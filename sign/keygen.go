// Package sign implements UOV key generation, signing and verification.
package sign

import (
	"errors"
	"fmt"
	"io"
	"sync"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/core"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/maps/affine"
	"github.com/BackendStack21/k-uov-go/maps/central"
	"github.com/BackendStack21/k-uov-go/maps/public"
	"github.com/BackendStack21/k-uov-go/utils"
)

// Domain separation strings for seed derivation and message hashing.
const (
	// DomainAffine derives the affine map seed.
	DomainAffine = "kuov-keygen-affine-v1"
	// DomainCentral derives the central system seed.
	DomainCentral = "kuov-keygen-central-v1"
	// DomainMessage prefixes the hash-to-target input.
	DomainMessage = "kuov-sign-msg-v1"
)

// SeedSize is the number of bytes drawn for a fresh key seed.
const SeedSize = 32

// GenerateKeyPair generates a key pair for a named parameter set.
func GenerateKeyPair(level kuov.SecurityLevel) (*kuov.KeyPair, error) {
	params, err := core.GetParams(level)
	if err != nil {
		return nil, err
	}
	return GenerateKeyPairWithReader(params, utils.RandReader)
}

// GenerateKeyPairWithReader draws a seed from rng and derives the key pair
// from it.
func GenerateKeyPairWithReader(params kuov.Params, rng io.Reader) (*kuov.KeyPair, error) {
	if err := core.ValidateParams(params); err != nil {
		return nil, err
	}

	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, err
	}

	kp, err := GenerateKeyPairFromSeed(params, seed)
	utils.Zeroize(seed)
	return kp, err
}

// GenerateKeyPairFromSeed generates a deterministic key pair. The affine map
// and the central system are sampled concurrently from independent SHAKE256
// streams derived from seed.
func GenerateKeyPairFromSeed(params kuov.Params, seed []byte) (*kuov.KeyPair, error) {
	if err := core.ValidateParams(params); err != nil {
		return nil, err
	}
	if len(seed) < SeedSize {
		return nil, errors.New("seed must be at least 32 bytes")
	}
	if err := utils.ValidateSeedEntropy(seed); err != nil {
		return nil, err
	}

	f := field.New(params.P)

	// Derive component seeds
	affineSeed := utils.HashWithDomain(DomainAffine, seed)
	centralSeed := utils.HashWithDomain(DomainCentral, seed)
	defer utils.Zeroize(affineSeed)
	defer utils.Zeroize(centralSeed)

	var wg sync.WaitGroup
	var affineMap kuov.AffineMap
	var forms []kuov.QuadraticForm
	var affineErr, centralErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		affineMap, affineErr = affine.Generate(f, params.N(), utils.NewShakeReader(DomainAffine, affineSeed))
	}()
	go func() {
		defer wg.Done()
		forms, centralErr = central.Generate(f, params.O, params.V, utils.NewShakeReader(DomainCentral, centralSeed))
	}()
	wg.Wait()

	if affineErr != nil {
		return nil, affineErr
	}
	if centralErr != nil {
		return nil, centralErr
	}

	kp := assemble(f, params, affineMap, forms)
	kp.PrivateKey.Seed = append([]byte{}, seed...)
	return kp, nil
}

// KeyGen builds a key pair for explicit dimensions, drawing the affine map
// and then the central system from rng in that order. The same rng contents
// always give the same key pair.
func KeyGen(o, v int, p uint32, rng io.Reader) (*kuov.KeyPair, error) {
	params, err := core.NewParams(o, v, p)
	if err != nil {
		return nil, err
	}
	f := field.New(p)

	affineMap, err := affine.Generate(f, params.N(), rng)
	if err != nil {
		return nil, err
	}
	forms, err := central.Generate(f, o, v, rng)
	if err != nil {
		return nil, fmt.Errorf("central system: %w", err)
	}
	return assemble(f, params, affineMap, forms), nil
}

func assemble(f field.Field, params kuov.Params, m kuov.AffineMap, forms []kuov.QuadraticForm) *kuov.KeyPair {
	publicKey := kuov.PublicKey{
		Forms:  public.Compose(f, forms, m),
		Params: params,
	}

	privateKey := kuov.PrivateKey{
		Affine:        m,
		Central:       forms,
		Params:        params,
		PublicKeyHash: public.Fingerprint(publicKey),
	}

	return &kuov.KeyPair{
		PrivateKey: privateKey,
		PublicKey:  publicKey,
	}
}
