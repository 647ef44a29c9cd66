package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestSecureRandomBytes_Zero(t *testing.T) {
	bytes, err := SecureRandomBytes(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(bytes) != 0 {
		t.Error("expected empty slice")
	}
}

func TestSecureRandomBytes_RandError(t *testing.T) {
	old := RandReader
	RandReader = &errorReader{}
	defer func() { RandReader = old }()

	_, err := SecureRandomBytes(32)
	if err == nil {
		t.Error("expected error from rand failure")
	}
}

func TestRandomInt_EdgeCases(t *testing.T) {
	// Test max=0 should return error
	_, err := RandomInt(0)
	if err == nil {
		t.Error("RandomInt(0) should return error")
	}

	// Test negative should return error
	_, err = RandomInt(-5)
	if err == nil {
		t.Error("RandomInt(-5) should return error")
	}
}

func TestRandomInt_RandError(t *testing.T) {
	old := RandReader
	RandReader = &errorReader{}
	defer func() { RandReader = old }()

	if _, err := RandomInt(100); err == nil {
		t.Error("expected error from rand failure")
	}
}

func TestRandomUint32From_Errors(t *testing.T) {
	if _, err := RandomUint32From(&errorReader{}, 0); err == nil {
		t.Error("expected error for max=0")
	}
	if _, err := RandomUint32From(&errorReader{}, 7); err == nil {
		t.Error("expected error from reader failure")
	}
	// max=1 never touches the reader
	v, err := RandomUint32From(&errorReader{}, 1)
	if err != nil || v != 0 {
		t.Errorf("RandomUint32From(1) = %d, %v", v, err)
	}
	// short reader
	if _, err := RandomUint32From(strings.NewReader("ab"), 7); err == nil {
		t.Error("expected error from short reader")
	}
}

func TestDomainTooLong(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for long domain")
		}
	}()
	HashWithDomain(strings.Repeat("x", 256), nil)
}

func TestBlake3XOF_InputTooLarge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for oversized input")
		}
	}()
	Blake3XOF("d", make([]byte, MaxMessageSize+1))
}

type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("simulated rand error")
}

func TestDebugf(t *testing.T) {
	var buf strings.Builder
	oldW, oldE := DebugWriter, DebugEnabled
	defer func() { DebugWriter, DebugEnabled = oldW, oldE }()
	DebugWriter = &buf

	DebugEnabled = false
	Debugf("sign", "attempt %d", 1)
	if buf.Len() != 0 {
		t.Error("Debugf wrote while disabled")
	}

	DebugEnabled = true
	Debugf("sign", "attempt %d", 2)
	if got := buf.String(); got != "[UOV-Go] sign: attempt 2\n" {
		t.Errorf("Debugf wrote %q", got)
	}
}
