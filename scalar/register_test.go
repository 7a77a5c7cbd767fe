// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newRegister creates a register of a type and byte order holding value.
func newRegister(t *testing.T, typ Type, endian Endianness, value float64) (r *Register) {
	t.Helper()

	r = NewRegister()
	if err := r.SetEndianness(endian); err != nil {
		t.Fatal(err)
	}
	if err := r.SetType(typ); err != nil {
		t.Fatal(err)
	}
	if err := r.SetValue(value); err != nil {
		t.Fatal(err)
	}
	if r.Type() != typ {
		t.Fatalf("%v does not fit %v", value, typ)
	}

	return
}

var endians = []Endianness{ENDIAN_LITTLE, ENDIAN_BIG}

func TestNewRegister(t *testing.T) {
	assert := assert.New(t)

	r := NewRegister()
	assert.False(r.Verbose)
	assert.Equal(TYPE_F64, r.Type())
	assert.Equal(SIGNED, r.Signedness())
	assert.Equal(8, r.Size())
	assert.Equal(CATEGORY_FLOATING, r.Category())
	assert.Equal(ENDIAN_BIG, r.Endianness())
	assert.Equal(0.0, r.Value())
	assert.Equal(make([]byte, 8), r.Bytes())
	assert.Equal(Descriptor{Type: TYPE_F64, Signedness: SIGNED, Size: 8, Category: CATEGORY_FLOATING}, r.Descriptor())
}

func TestRegisterSetSignedness(t *testing.T) {
	assert := assert.New(t)

	for _, endian := range endians {
		r := newRegister(t, TYPE_S8, endian, -1)
		assert.NoError(r.SetSignedness(UNSIGNED))
		assert.Equal(TYPE_U8, r.Type())
		assert.Equal(255.0, r.Value())

		assert.NoError(r.SetSignedness(UNSIGNED))
		assert.Equal(TYPE_U8, r.Type())

		r = newRegister(t, TYPE_U16, endian, 0x8001)
		assert.NoError(r.SetSignedness(SIGNED))
		assert.Equal(TYPE_S16, r.Type())
		assert.Equal(-32767.0, r.Value())
	}

	r := NewRegister()
	err := r.SetSignedness(UNSIGNED)
	assert.True(errors.Is(err, ErrInvalidOperation))
	err = r.SetSignedness(SIGNED)
	assert.True(errors.Is(err, ErrInvalidOperation))
	assert.Equal(TYPE_F64, r.Type())

	r = newRegister(t, TYPE_S32, ENDIAN_BIG, 1)
	err = r.SetSignedness(Signedness(3))
	assert.True(errors.Is(err, ErrInvalidOperation))
}

func TestRegisterSetSize(t *testing.T) {
	assert := assert.New(t)

	r := NewRegister()
	assert.NoError(r.SetSize(4))
	assert.Equal(TYPE_F32, r.Type())
	assert.NoError(r.SetSize(8))
	assert.Equal(TYPE_F64, r.Type())

	for _, size := range []int{0, 1, 2, 3, 16} {
		err := r.SetSize(size)
		assert.True(errors.Is(err, ErrInvalidOperation), "size %d", size)
		assert.Equal(TYPE_F64, r.Type())
	}

	r = newRegister(t, TYPE_U32, ENDIAN_LITTLE, 0x1234)
	assert.NoError(r.SetSize(1))
	assert.Equal(TYPE_U8, r.Type())
	assert.Equal(float64(0x34), r.Value())
	assert.NoError(r.SetSize(2))
	assert.Equal(TYPE_U16, r.Type())
	assert.Equal(float64(0x34), r.Value())

	err := r.SetSize(8)
	assert.True(errors.Is(err, ErrInvalidOperation))
	var size *ErrSize
	assert.True(errors.As(err, &size))
	assert.Equal(UNSIGNED, size.Signedness)
}

func TestRegisterSetCategory(t *testing.T) {
	assert := assert.New(t)

	r := newRegister(t, TYPE_F64, ENDIAN_BIG, 2.75)
	assert.NoError(r.SetCategory(CATEGORY_FLOATING))
	assert.Equal(2.75, r.Value())

	assert.NoError(r.SetCategory(CATEGORY_INTEGRAL))
	assert.Equal(TYPE_S32, r.Type())
	assert.Equal(0.0, r.Value())

	assert.NoError(r.SetValue(-7))
	assert.NoError(r.SetCategory(CATEGORY_FLOATING))
	assert.Equal(TYPE_F64, r.Type())
	assert.Equal(0.0, r.Value())

	err := r.SetCategory(Category(2))
	assert.True(errors.Is(err, ErrInvalidOperation))
	assert.Equal(TYPE_F64, r.Type())
}

func TestRegisterSetEndianness(t *testing.T) {
	assert := assert.New(t)

	r := newRegister(t, TYPE_U32, ENDIAN_BIG, 0x01020304)
	assert.Equal([]byte{1, 2, 3, 4}, r.Bytes())

	assert.NoError(r.SetEndianness(ENDIAN_LITTLE))
	assert.Equal([]byte{4, 3, 2, 1}, r.Bytes())
	assert.Equal(float64(0x01020304), r.Value())

	assert.NoError(r.SetEndianness(ENDIAN_LITTLE))
	assert.Equal([]byte{4, 3, 2, 1}, r.Bytes())

	assert.NoError(r.SetEndianness(ENDIAN_BIG))
	assert.Equal([]byte{1, 2, 3, 4}, r.Bytes())

	err := r.SetEndianness(Endianness(9))
	assert.True(errors.Is(err, ErrInvalidOperation))
	assert.Equal(ENDIAN_BIG, r.Endianness())
}

func TestRegisterSetType(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		From     Type
		Value    float64
		To       Type
		Expected float64
	}{
		{TYPE_S8, -5, TYPE_S32, -5},
		{TYPE_S8, -5, TYPE_S16, -5},
		{TYPE_S8, -5, TYPE_U16, 65531},
		{TYPE_S8, 5, TYPE_S32, 5},
		{TYPE_U8, 200, TYPE_U32, 200},
		{TYPE_U8, 200, TYPE_S16, 200},
		{TYPE_S16, -2, TYPE_U32, 4294967294},
		{TYPE_S32, 0x12345678, TYPE_S16, 0x5678},
		{TYPE_S32, 0x12345678, TYPE_U8, 0x78},
		{TYPE_S32, 0x000080ff, TYPE_S16, -32513},
		{TYPE_U32, 0x3f800000, TYPE_F32, 1},
		{TYPE_F32, 1, TYPE_U32, 0x3f800000},
		{TYPE_F32, -1, TYPE_F64, math.Float64frombits(0xbf800000)},
		{TYPE_F64, 1, TYPE_U32, 0},
		{TYPE_F64, 1, TYPE_S8, 0},
	}

	for _, endian := range endians {
		for _, testcase := range table {
			r := newRegister(t, testcase.From, endian, testcase.Value)
			assert.NoError(r.SetType(testcase.To))
			assert.Equal(testcase.To, r.Type(), "%+v %v", testcase, endian)
			desc, _ := testcase.To.Descriptor()
			assert.Equal(desc, r.Descriptor())
			assert.Equal(desc.Size, len(r.Bytes()))
			assert.Equal(testcase.Expected, r.Value(), "%+v %v", testcase, endian)
		}
	}

	r := NewRegister()
	err := r.SetType(Type(8))
	assert.True(errors.Is(err, ErrInvalidOperation))
	assert.Equal(TYPE_F64, r.Type())
}

func TestRegisterSetTypeBytes(t *testing.T) {
	assert := assert.New(t)

	r := newRegister(t, TYPE_U16, ENDIAN_BIG, 0x0102)
	assert.NoError(r.SetType(TYPE_U32))
	assert.Equal([]byte{0, 0, 1, 2}, r.Bytes())
	assert.NoError(r.SetType(TYPE_U8))
	assert.Equal([]byte{2}, r.Bytes())

	r = newRegister(t, TYPE_U16, ENDIAN_LITTLE, 0x0102)
	assert.NoError(r.SetType(TYPE_U32))
	assert.Equal([]byte{2, 1, 0, 0}, r.Bytes())
	assert.NoError(r.SetType(TYPE_U8))
	assert.Equal([]byte{2}, r.Bytes())
}

func TestRegisterString(t *testing.T) {
	assert := assert.New(t)

	r := newRegister(t, TYPE_S16, ENDIAN_LITTLE, -2)
	text := r.String()

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	assert.Equal([]string{
		"  type: s16",
		"endian: little",
		" value: -2",
		" bytes: fe ff",
		"  bits: 01111111_11111111",
	}, lines)
}
