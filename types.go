// Package kuov implements the Unbalanced Oil-and-Vinegar (UOV) multivariate
// signature scheme over a prime field GF(p).
//
// A private key is an invertible affine map together with a trapdoor system of
// quadratic forms in which no oil variable multiplies another oil variable.
// The public key is the composition of the two. Signing fixes the vinegar
// variables at random, which turns the trapdoor system into a linear system in
// the oil variables.
//
// WARNING: This is an educational implementation. The arithmetic is not
// constant time and the named parameter sets are far below real-world sizes.
// DO NOT use it to protect anything.
package kuov

// SecurityLevel names a parameter set.
type SecurityLevel string

const (
	// UOVToy is the smallest demonstration set: GF(2), 2 oil, 4 vinegar.
	UOVToy SecurityLevel = "UOV-TOY"
	// UOV31 works over GF(31) with 8 oil and 16 vinegar variables.
	UOV31 SecurityLevel = "UOV-31"
	// UOV251 works over GF(251) with 12 oil and 24 vinegar variables.
	UOV251 SecurityLevel = "UOV-251"
	// Custom marks parameters built with core.NewParams.
	Custom SecurityLevel = "CUSTOM"
	// Aliases with underscore for convenience
	UOV_TOY SecurityLevel = UOVToy
	UOV_31  SecurityLevel = UOV31
	UOV_251 SecurityLevel = UOV251
)

// =============================================================================
// Parameters
// =============================================================================

// Params holds the dimensions and field of a UOV instance.
type Params struct {
	Level SecurityLevel `json:"level"`
	O     int           `json:"o"` // Oil variables, also the number of equations
	V     int           `json:"v"` // Vinegar variables
	P     uint32        `json:"p"` // Prime field modulus
}

// N returns the total number of variables o + v.
func (p Params) N() int {
	return p.O + p.V
}

// =============================================================================
// Linear Algebra Containers
// =============================================================================

// Vector is a sequence of field elements in [0, p).
type Vector []uint32

// Matrix is a dense row-major matrix of field elements.
type Matrix struct {
	Rows int
	Cols int
	Data []uint32
}

// NewMatrix allocates a zero matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]uint32, rows*cols)}
}

// At returns the entry in row i, column j.
func (m Matrix) At(i, j int) uint32 {
	return m.Data[i*m.Cols+j]
}

// Set stores v in row i, column j.
func (m Matrix) Set(i, j int, v uint32) {
	m.Data[i*m.Cols+j] = v
}

// Row returns row i as a vector sharing the matrix storage.
func (m Matrix) Row(i int) Vector {
	return Vector(m.Data[i*m.Cols : (i+1)*m.Cols])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := Matrix{Rows: m.Rows, Cols: m.Cols, Data: make([]uint32, len(m.Data))}
	copy(c.Data, m.Data)
	return c
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// =============================================================================
// Maps
// =============================================================================

// QuadraticForm represents xᵗAx + bᵗx + c over GF(p).
type QuadraticForm struct {
	A Matrix // n x n
	B Vector // n
	C uint32
}

// AffineMap represents x -> Dx + e with D invertible.
type AffineMap struct {
	D Matrix // n x n
	E Vector // n
}

// =============================================================================
// Key Types
// =============================================================================

// PrivateKey is the UOV trapdoor: the affine map and the central system.
// Central forms have a zero oil-oil block.
type PrivateKey struct {
	Affine        AffineMap
	Central       []QuadraticForm // o forms
	Params        Params
	Seed          []byte // nil when the key was not derived from a seed
	PublicKeyHash []byte
}

// PublicKey is the composed quadratic system with upper-triangular matrices.
type PublicKey struct {
	Forms  []QuadraticForm // o forms
	Params Params
}

// KeyPair bundles a private key and its public key.
type KeyPair struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey
}

// Signature is a preimage x' in GF(p)^n of the target under the public map.
type Signature struct {
	X Vector
}
