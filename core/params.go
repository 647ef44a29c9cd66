// Package core provides parameter sets and validation for k-uov.
package core

import (
	"errors"
	"fmt"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/utils"
)

// MaxModulus bounds p so that a product of two field elements fits in uint64
// with room for one addition before reduction.
const MaxModulus = 1 << 31

// UOVToyParams reproduces the demonstration instance: GF(2), 2 oil, 4 vinegar.
var UOVToyParams = kuov.Params{
	Level: kuov.UOVToy,
	O:     2,
	V:     4,
	P:     2,
}

// UOV31Params is a small instance over GF(31).
var UOV31Params = kuov.Params{
	Level: kuov.UOV31,
	O:     8,
	V:     16,
	P:     31,
}

// UOV251Params is a medium instance over GF(251).
var UOV251Params = kuov.Params{
	Level: kuov.UOV251,
	O:     12,
	V:     24,
	P:     251,
}

// Levels lists the named parameter sets in ascending size.
var Levels = []kuov.SecurityLevel{kuov.UOVToy, kuov.UOV31, kuov.UOV251}

// GetParams returns the parameter set for the given level.
func GetParams(level kuov.SecurityLevel) (kuov.Params, error) {
	switch level {
	case kuov.UOVToy:
		return UOVToyParams, nil
	case kuov.UOV31:
		return UOV31Params, nil
	case kuov.UOV251:
		return UOV251Params, nil
	default:
		return kuov.Params{}, fmt.Errorf("unknown security level: %s", level)
	}
}

// NewParams builds and validates a custom parameter set.
func NewParams(o, v int, p uint32) (kuov.Params, error) {
	params := kuov.Params{Level: kuov.Custom, O: o, V: v, P: p}
	if err := ValidateParams(params); err != nil {
		return kuov.Params{}, err
	}
	return params, nil
}

// ValidateParams checks dimensions and the field modulus.
func ValidateParams(params kuov.Params) error {
	if params.O <= 0 {
		return errors.New("oil count must be positive")
	}
	if params.V <= 0 {
		return errors.New("vinegar count must be positive")
	}
	if params.N() > utils.MaxDimension {
		return fmt.Errorf("dimension %d: %w", params.N(), utils.ErrExceedsLimit)
	}
	if params.P >= MaxModulus {
		return errors.New("modulus must be below 2^31")
	}
	if !isPrime(params.P) {
		return errors.New("modulus must be prime")
	}
	return nil
}

// isPrime checks if a number is prime using a simple trial division.
// This is used for validating parameters, not for generating large primes.
func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := uint64(3); i*i <= uint64(n); i += 2 {
		if uint64(n)%i == 0 {
			return false
		}
	}
	return true
}
