// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Type is the numeric encoding of a register.
type Type int

//go:generate go tool stringer -linecomment -type=Type
const (
	TYPE_S8  = Type(0) // s8
	TYPE_U8  = Type(1) // u8
	TYPE_S16 = Type(2) // s16
	TYPE_U16 = Type(3) // u16
	TYPE_S32 = Type(4) // s32
	TYPE_U32 = Type(5) // u32
	TYPE_F32 = Type(6) // f32
	TYPE_F64 = Type(7) // f64
)

// Signedness of an integral type. Floating point types are always SIGNED.
type Signedness int

//go:generate go tool stringer -linecomment -type=Signedness
const (
	SIGNED   = Signedness(0) // signed
	UNSIGNED = Signedness(1) // unsigned
)

// Category is the integral or floating point class of a type.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	CATEGORY_INTEGRAL = Category(0) // integral
	CATEGORY_FLOATING = Category(1) // float
)

// Endianness is the byte order of the active register bytes.
type Endianness int

//go:generate go tool stringer -linecomment -type=Endianness
const (
	ENDIAN_LITTLE = Endianness(0) // little
	ENDIAN_BIG    = Endianness(1) // big
)

const (
	STORE_SIZE = 8 // Size of the register store, in bytes.
)

var _types = [...]Type{
	TYPE_S8, TYPE_U8,
	TYPE_S16, TYPE_U16,
	TYPE_S32, TYPE_U32,
	TYPE_F32, TYPE_F64,
}

// Types returns an iterator over all of the register types.
func Types() iter.Seq[Type] {
	return slices.Values(_types[:])
}

// Descriptor is a Type decomposed into its attributes.
type Descriptor struct {
	Type       Type       // Type tag.
	Signedness Signedness // Signedness of the type.
	Size       int        // Size of the type, in bytes.
	Category   Category   // Category of the type.
}

// Descriptor decomposes the type into its signedness, size and category.
func (t Type) Descriptor() (desc Descriptor, err error) {
	desc.Type = t

	switch t {
	case TYPE_S8:
		desc.Signedness, desc.Size, desc.Category = SIGNED, 1, CATEGORY_INTEGRAL
	case TYPE_U8:
		desc.Signedness, desc.Size, desc.Category = UNSIGNED, 1, CATEGORY_INTEGRAL
	case TYPE_S16:
		desc.Signedness, desc.Size, desc.Category = SIGNED, 2, CATEGORY_INTEGRAL
	case TYPE_U16:
		desc.Signedness, desc.Size, desc.Category = UNSIGNED, 2, CATEGORY_INTEGRAL
	case TYPE_S32:
		desc.Signedness, desc.Size, desc.Category = SIGNED, 4, CATEGORY_INTEGRAL
	case TYPE_U32:
		desc.Signedness, desc.Size, desc.Category = UNSIGNED, 4, CATEGORY_INTEGRAL
	case TYPE_F32:
		desc.Signedness, desc.Size, desc.Category = SIGNED, 4, CATEGORY_FLOATING
	case TYPE_F64:
		desc.Signedness, desc.Size, desc.Category = SIGNED, 8, CATEGORY_FLOATING
	default:
		err = &ErrUnknown{What: "type", Value: t.String()}
		desc = Descriptor{}
	}

	return
}

// TypeOf composes a type from its attributes.
// The signedness is ignored for floating point types.
func TypeOf(sign Signedness, size int, category Category) (t Type, err error) {
	for _, t = range _types {
		desc, _ := t.Descriptor()
		if desc.Category != category || desc.Size != size {
			continue
		}
		if category == CATEGORY_FLOATING || desc.Signedness == sign {
			return
		}
	}

	t = 0
	err = &ErrSize{Signedness: sign, Size: size, Category: category}
	return
}

// limits returns the closed range of an integer type.
func limits[T constraints.Integer]() (lo, hi float64) {
	var top T = 1
	for next := top<<1 | 1; next > top; next = top<<1 | 1 {
		top = next
	}

	hi = float64(top)
	if ^T(0) < 0 {
		lo = -hi - 1
	}

	return
}

// Limits returns the finite range of the type.
func (t Type) Limits() (lo, hi float64) {
	switch t {
	case TYPE_S8:
		lo, hi = limits[int8]()
	case TYPE_U8:
		lo, hi = limits[uint8]()
	case TYPE_S16:
		lo, hi = limits[int16]()
	case TYPE_U16:
		lo, hi = limits[uint16]()
	case TYPE_S32:
		lo, hi = limits[int32]()
	case TYPE_U32:
		lo, hi = limits[uint32]()
	case TYPE_F32:
		lo, hi = -math.MaxFloat32, math.MaxFloat32
	case TYPE_F64:
		lo, hi = -math.MaxFloat64, math.MaxFloat64
	}

	return
}

// Fits returns true if v is exactly encodable by the type.
func (t Type) Fits(v float64) bool {
	desc, err := t.Descriptor()
	if err != nil {
		return false
	}

	switch {
	case t == TYPE_F64:
		return true
	case t == TYPE_F32:
		return float64(float32(v)) == v
	case desc.Category == CATEGORY_INTEGRAL:
		lo, hi := t.Limits()
		return v == math.Trunc(v) && v >= lo && v <= hi
	}

	return false
}

// Promote selects the narrowest type able to hold v, in the order
// s32, u32, f32 and f64.
func Promote(v float64) (t Type) {
	switch {
	case TYPE_S32.Fits(v):
		t = TYPE_S32
	case TYPE_U32.Fits(v):
		t = TYPE_U32
	case TYPE_F32.Fits(v):
		t = TYPE_F32
	default:
		t = TYPE_F64
	}

	return
}

// parseName finds the value whose String() matches name.
func parseName[T fmt.Stringer](what string, name string, values ...T) (value T, err error) {
	for _, v := range values {
		if v.String() == name {
			value = v
			return
		}
	}

	err = &ErrUnknown{What: what, Value: name}
	return
}

// ParseType parses a type name, such as "s8" or "f64".
func ParseType(name string) (Type, error) {
	return parseName("type", name, _types[:]...)
}

// ParseSignedness parses "signed" or "unsigned".
func ParseSignedness(name string) (Signedness, error) {
	return parseName("signedness", name, SIGNED, UNSIGNED)
}

// ParseCategory parses "integral" or "float".
func ParseCategory(name string) (Category, error) {
	return parseName("category", name, CATEGORY_INTEGRAL, CATEGORY_FLOATING)
}

// ParseEndianness parses "little" or "big".
func ParseEndianness(name string) (Endianness, error) {
	return parseName("endianness", name, ENDIAN_LITTLE, ENDIAN_BIG)
}
