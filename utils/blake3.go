package utils

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
)

// Blake3XOF returns the BLAKE3 extendable output of a domain tag followed by
// length-prefixed inputs. The reader never runs dry.
// Panics if domain is longer than 255 bytes or an input exceeds MaxMessageSize.
func Blake3XOF(domain string, inputs ...[]byte) io.Reader {
	h := blake3.New()
	writeDomain(h, domain)
	var lenBytes [4]byte
	for _, input := range inputs {
		if len(input) > MaxMessageSize {
			panic("Blake3XOF: input size exceeds maximum")
		}
		binary.LittleEndian.PutUint32(lenBytes[:], uint32(len(input)))
		h.Write(lenBytes[:])
		h.Write(input)
	}
	return h.Digest()
}
