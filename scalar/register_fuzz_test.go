// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzRegister(f *testing.F) {
	for rv := range 0x10 {
		data := make([]byte, STORE_SIZE)
		for n := range data {
			data[n] = uint8(rand.Uint32() & 0xff)
		}
		f.Add(uint8(rv&0x7), (rv&0x8) != 0, data, uint8(rv*5))
	}

	f.Fuzz(func(t *testing.T, typ uint8, little bool, data []byte, count uint8) {
		assert := assert.New(t)

		endian := ENDIAN_BIG
		if little {
			endian = ENDIAN_LITTLE
		}

		r := NewRegister()
		assert.NoError(r.SetEndianness(endian))
		assert.NoError(r.SetType(Type(typ & 0x7)))

		size := r.Size()
		if len(data) < size {
			err := r.SetBytes(data)
			assert.True(errors.Is(err, ErrLengthMismatch))
			return
		}
		data = data[:size]

		// Byte round trip.
		assert.NoError(r.SetBytes(data))
		assert.Equal(data, r.Bytes())

		// Bit round trip.
		bits := r.Bits()
		assert.Equal(size*8, len(bits))
		assert.NoError(r.SetBits(bits))
		assert.Equal(data, r.Bytes())

		// Endianness involution, with the value preserved.
		value := r.Value()
		other := ENDIAN_LITTLE
		if endian == ENDIAN_LITTLE {
			other = ENDIAN_BIG
		}
		assert.NoError(r.SetEndianness(other))
		if !math.IsNaN(value) {
			assert.Equal(value, r.Value())
		}
		assert.NoError(r.SetEndianness(endian))
		assert.Equal(data, r.Bytes())

		// Double flip is the identity.
		r.Flip()
		r.Flip()
		assert.Equal(data, r.Bytes())

		// Shift range.
		shift := int(count)
		err := r.ShiftRight(shift)
		if shift > size*8 {
			assert.True(errors.Is(err, ErrRange))
			assert.Equal(data, r.Bytes())
		} else {
			assert.NoError(err)
			assert.NoError(r.SetBytes(data))
			assert.NoError(r.ShiftLeft(shift))
		}

		// Increment then decrement of an integral type is the identity.
		if r.Category() == CATEGORY_INTEGRAL {
			assert.NoError(r.SetBytes(data))
			assert.NoError(r.Increment())
			assert.NoError(r.Decrement())
			assert.Equal(Type(typ&0x7), r.Type())
			assert.Equal(data, r.Bytes())
		}
	})
}
