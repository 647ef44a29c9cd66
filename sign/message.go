package sign

import (
	"fmt"

	kuov "github.com/BackendStack21/k-uov-go"
	"github.com/BackendStack21/k-uov-go/field"
	"github.com/BackendStack21/k-uov-go/maps/public"
	"github.com/BackendStack21/k-uov-go/utils"
)

// HashToTarget maps a message to a target vector bound to one public key.
// The BLAKE3 output stream is rejection sampled into o field elements.
func HashToTarget(publicKeyHash, message []byte, params kuov.Params) (kuov.Vector, error) {
	if err := utils.CheckLength(len(message), utils.MaxMessageSize); err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	if params.P < 2 {
		return nil, fmt.Errorf("modulus %d: %w", params.P, utils.ErrInvalidLength)
	}
	f := field.New(params.P)
	return f.RandomVector(utils.Blake3XOF(DomainMessage, publicKeyHash, message), params.O)
}

// SignMessage hashes message to a target and signs it with fresh randomness
// from utils.RandReader.
func SignMessage(sk *kuov.PrivateKey, message []byte) (*kuov.Signature, error) {
	if sk == nil {
		return nil, fmt.Errorf("%w: nil key", ErrKeyCorrupted)
	}
	target, err := HashToTarget(sk.PublicKeyHash, message, sk.Params)
	if err != nil {
		return nil, err
	}
	return Sign(sk, target, utils.RandReader)
}

// VerifyMessage checks a signature produced by SignMessage.
func VerifyMessage(pk *kuov.PublicKey, message []byte, sig *kuov.Signature) bool {
	if pk == nil {
		return false
	}
	target, err := HashToTarget(public.Fingerprint(*pk), message, pk.Params)
	if err != nil {
		return false
	}
	return Verify(pk, sig, target)
}
