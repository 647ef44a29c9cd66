package kuov

// Version of the k-uov Go implementation.
const Version = "0.3.0"

// API summary:
//
// Key Generation:
//   - sign.GenerateKeyPair(level) - Generate a key pair for a named parameter set
//   - sign.GenerateKeyPairFromSeed(params, seed) - Deterministic key generation
//   - sign.KeyGen(o, v, p, rng) - Key generation from explicit dimensions
//
// Signatures:
//   - sign.Sign(sk, target, rng) - Find a preimage of a target vector
//   - sign.Verify(pk, sig, target) - Check a preimage against the public system
//   - sign.SignMessage(sk, message) - Hash a message to a target and sign it
//   - sign.VerifyMessage(pk, message, sig) - Verify a message signature
//
// Parameters:
//   - core.GetParams(level) - Get parameters for a named set
//   - core.NewParams(o, v, p) - Validate and build a custom set
//   - UOV_TOY, UOV_31, UOV_251 - Named parameter sets
