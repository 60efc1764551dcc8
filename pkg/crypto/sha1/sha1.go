// Package sha1 implements the SHA-1 hash algorithm defined in
// FIPS 180-4.
//
// SHA-1 collisions are practical to construct, so the algorithm must
// not protect signatures or certificates. It remains a well-specified
// 160-bit compression target, which is what the truncated-digest
// experiments and the key-derivation command use it for.
package sha1

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math/bits"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the compression function input size in bytes.
	BlockSize = 64
)

// Initial hash state, FIPS 180-4 section 5.3.1.
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

// Round constants, one per twenty-step span.
const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

// digest is a streaming SHA-1 computation. The zero value is not ready
// for use; construct through New or call Reset first.
type digest struct {
	h        [5]uint32
	buf      [BlockSize]byte
	buffered int
	written  uint64
}

// New returns a streaming SHA-1 hash. The returned value satisfies
// hash.Hash, so it plugs into PBKDF2 and HMAC unchanged.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = [5]uint32{init0, init1, init2, init3, init4}
	d.buffered = 0
	d.written = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

// Write absorbs p into the stream. Partial blocks wait in an internal
// buffer until a full 64 bytes accumulate.
func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.written += uint64(n)

	if d.buffered > 0 {
		c := copy(d.buf[d.buffered:], p)
		d.buffered += c
		p = p[c:]
		if d.buffered == BlockSize {
			compress(d, d.buf[:])
			d.buffered = 0
		}
	}
	if full := len(p) &^ (BlockSize - 1); full > 0 {
		compress(d, p[:full])
		p = p[full:]
	}
	d.buffered += copy(d.buf[d.buffered:], p)
	return n, nil
}

// Sum appends the digest of the stream so far to in. Padding runs on a
// copy of the state, so the stream keeps accepting writes afterwards.
func (d *digest) Sum(in []byte) []byte {
	dd := *d
	sum := dd.finalize()
	return append(in, sum[:]...)
}

// finalize applies the FIPS 180-4 padding, a 0x80 byte followed by
// zeros up to 56 mod 64 and the big-endian bit count, then serializes
// the chaining state.
func (d *digest) finalize() [Size]byte {
	written := d.written

	var pad [BlockSize + 8]byte
	pad[0] = 0x80
	padLen := 56 - int(written%BlockSize)
	if padLen <= 0 {
		padLen += BlockSize
	}
	binary.BigEndian.PutUint64(pad[padLen:], written<<3)
	d.Write(pad[:padLen+8])

	var out [Size]byte
	for i, v := range d.h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out
}

// compress folds whole 64-byte blocks of p into the running state.
func compress(dig *digest, p []byte) {
	h0, h1, h2, h3, h4 := dig.h[0], dig.h[1], dig.h[2], dig.h[3], dig.h[4]

	for len(p) >= BlockSize {
		var w [80]uint32
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[4*i:])
		}
		for i := 16; i < 80; i++ {
			w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h0, h1, h2, h3, h4
		for i := 0; i < 80; i++ {
			var f, k uint32
			switch {
			case i < 20:
				f = (b & c) | (^b & d)
				k = k0
			case i < 40:
				f = b ^ c ^ d
				k = k1
			case i < 60:
				f = (b & c) | (b & d) | (c & d)
				k = k2
			default:
				f = b ^ c ^ d
				k = k3
			}
			t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		p = p[BlockSize:]
	}

	dig.h = [5]uint32{h0, h1, h2, h3, h4}
}

// Sum returns the SHA-1 digest of data in one call.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Reset()
	d.Write(data)
	return d.finalize()
}

// HexDigest returns the digest of data as lowercase hex.
func HexDigest(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}
