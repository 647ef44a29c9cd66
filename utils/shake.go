package utils

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/sha3"
)

// SHA3256 computes the SHA3-256 cryptographic hash of the input.
func SHA3256(input []byte) []byte {
	h := sha3.New256()
	h.Write(input)
	return h.Sum(nil)
}

// HashWithDomain computes a domain-separated SHA3-256 hash.
// It prefixes the data with the length of the domain string and the domain string itself.
// Panics if domain is longer than 255 bytes.
func HashWithDomain(domain string, data []byte) []byte {
	h := sha3.New256()
	writeDomain(h, domain)
	h.Write(data)
	return h.Sum(nil)
}

// HashUint32s hashes a domain tag followed by the little-endian encoding of
// each slice, every slice prefixed with its element count.
func HashUint32s(domain string, inputs ...[]uint32) []byte {
	h := sha3.New256()
	writeDomain(h, domain)
	var buf [4]byte
	for _, input := range inputs {
		binary.LittleEndian.PutUint32(buf[:], uint32(len(input)))
		h.Write(buf[:])
		for _, x := range input {
			binary.LittleEndian.PutUint32(buf[:], x)
			h.Write(buf[:])
		}
	}
	return h.Sum(nil)
}

// NewShakeReader returns an endless SHAKE256 stream keyed by domain and seed.
// Two readers built from the same arguments produce the same bytes.
// Panics if domain is longer than 255 bytes.
func NewShakeReader(domain string, seed []byte) io.Reader {
	h := sha3.NewShake256()
	writeDomain(h, domain)
	h.Write(seed)
	return h
}

// Shake256WithDomain computes SHAKE256 with domain separation.
// It works like HashWithDomain but produces an output of arbitrary length.
// Panics if domain is longer than 255 bytes.
func Shake256WithDomain(domain string, data []byte, outputLen int) []byte {
	output := make([]byte, outputLen)
	_, _ = io.ReadFull(NewShakeReader(domain, data), output)
	return output
}

func writeDomain(w io.Writer, domain string) {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	w.Write([]byte{byte(len(domainBytes))})
	w.Write(domainBytes)
}
