// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"iter"
	"slices"

	"github.com/ezrec/scalar/internal"
)

// Bytes returns a copy of the active bytes, in storage order.
func (r *Register) Bytes() []byte {
	return slices.Clone(r.active())
}

// SetBytes replaces the active bytes, in storage order.
func (r *Register) SetBytes(data []byte) (err error) {
	if len(data) != r.desc.Size {
		err = &ErrLength{What: "byte", Want: r.desc.Size, Got: len(data)}
		return
	}

	copy(r.active(), data)

	return
}

// bitShift is the shift of the n'th bit of a byte, under the byte order.
func bitShift(n int, endian Endianness) int {
	if endian == ENDIAN_BIG {
		return 7 - n
	}
	return n
}

// byteBits iterates the bits of a single byte.
func byteBits(b byte, endian Endianness) iter.Seq[uint8] {
	return func(yield func(bit uint8) bool) {
		for n := range 8 {
			if !yield((b >> bitShift(n, endian)) & 1) {
				return
			}
		}
	}
}

// BitSeq iterates the bits of the active bytes.
//
// Little-endian registers yield each byte least significant bit first,
// big-endian registers most significant bit first. Bytes are visited in
// storage order.
func (r *Register) BitSeq() iter.Seq[uint8] {
	seqs := make([]iter.Seq[uint8], 0, r.desc.Size)
	for _, b := range r.active() {
		seqs = append(seqs, byteBits(b, r.endian))
	}

	return internal.IterSeqConcat(seqs...)
}

// Bits returns the bits of the active bytes, in BitSeq() order.
func (r *Register) Bits() []uint8 {
	return slices.Collect(r.BitSeq())
}

// SetBits replaces the active bytes from bits in BitSeq() order.
// Any non-zero entry is a set bit.
func (r *Register) SetBits(bits []uint8) (err error) {
	if len(bits) != r.desc.Size*8 {
		err = &ErrLength{What: "bit", Want: r.desc.Size * 8, Got: len(bits)}
		return
	}

	data := r.active()
	for n := range data {
		var b byte
		for i, bit := range bits[n*8 : n*8+8] {
			if bit != 0 {
				b |= 1 << bitShift(i, r.endian)
			}
		}
		data[n] = b
	}

	return
}
