package core

import (
	"errors"
	"testing"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/utils"
)

func TestGetParams(t *testing.T) {
	for _, level := range Levels {
		params, err := GetParams(level)
		if err != nil {
			t.Fatalf("GetParams(%s) failed: %v", level, err)
		}
		if params.Level != level {
			t.Errorf("Expected %s, got %s", level, params.Level)
		}
		if err := ValidateParams(params); err != nil {
			t.Errorf("named set %s does not validate: %v", level, err)
		}
	}

	// Underscore aliases resolve to the same sets
	toy, err := GetParams(kuov.UOV_TOY)
	if err != nil {
		t.Fatal(err)
	}
	if toy.P != 2 || toy.O != 2 || toy.V != 4 {
		t.Errorf("unexpected toy params %+v", toy)
	}

	// Test invalid
	_, err = GetParams("INVALID")
	if err == nil {
		t.Error("GetParams(INVALID) should fail")
	}
}

func TestValidateParams(t *testing.T) {
	params, _ := GetParams(kuov.UOV_31)

	if err := ValidateParams(params); err != nil {
		t.Errorf("ValidateParams failed for valid params: %v", err)
	}

	invalid := params
	invalid.O = 0
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject O=0")
	}

	invalid = params
	invalid.V = -1
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject V<0")
	}

	invalid = params
	invalid.P = 10
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject non-prime P")
	}

	invalid = params
	invalid.P = 1
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject P=1")
	}

	invalid = params
	invalid.P = MaxModulus + 11
	if err := ValidateParams(invalid); err == nil {
		t.Error("ValidateParams should reject P >= 2^31")
	}

	invalid = params
	invalid.V = utils.MaxDimension
	if err := ValidateParams(invalid); !errors.Is(err, utils.ErrExceedsLimit) {
		t.Errorf("expected ErrExceedsLimit, got %v", err)
	}
}

func TestNewParams(t *testing.T) {
	params, err := NewParams(2, 2, 2)
	if err != nil {
		t.Fatalf("NewParams(2,2,2) failed: %v", err)
	}
	if params.Level != kuov.Custom || params.N() != 4 {
		t.Errorf("unexpected params %+v", params)
	}

	if _, err := NewParams(2, 2, 9); err == nil {
		t.Error("NewParams should reject composite modulus")
	}
	if _, err := NewParams(0, 2, 7); err == nil {
		t.Error("NewParams should reject zero oil")
	}
}

func TestIsPrime(t *testing.T) {
	primes := []uint32{2, 3, 5, 7, 11, 13, 31, 251, 3329, 2147483647}
	nonPrimes := []uint32{0, 1, 4, 6, 8, 9, 10, 12, 15, 3330, 2147483649}

	for _, p := range primes {
		if !isPrime(p) {
			t.Errorf("isPrime(%d) returned false", p)
		}
	}

	for _, np := range nonPrimes {
		if isPrime(np) {
			t.Errorf("isPrime(%d) returned true", np)
		}
	}
}
