// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"encoding/binary"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
)

// Register is the simulation of a scalar register.
//
// Only the first Size() bytes of the store are active; the remainder is
// unspecified. A Register is a plain value, so copying it takes a snapshot.
type Register struct {
	Verbose bool // If set, logs type transitions and promotions.

	store  [STORE_SIZE]byte
	desc   Descriptor
	endian Endianness
}

// NewRegister creates a big-endian f64 register holding zero.
func NewRegister() (r *Register) {
	desc, err := TYPE_F64.Descriptor()
	if err != nil {
		panic(err)
	}

	r = &Register{
		desc:   desc,
		endian: ENDIAN_BIG,
	}

	return
}

// Descriptor returns the current type descriptor.
func (r *Register) Descriptor() Descriptor {
	return r.desc
}

// Type returns the current type.
func (r *Register) Type() Type {
	return r.desc.Type
}

// Signedness returns the signedness of the current type.
func (r *Register) Signedness() Signedness {
	return r.desc.Signedness
}

// Size returns the size of the current type, in bytes.
func (r *Register) Size() int {
	return r.desc.Size
}

// Category returns the category of the current type.
func (r *Register) Category() Category {
	return r.desc.Category
}

// Endianness returns the byte order of the active bytes.
func (r *Register) Endianness() Endianness {
	return r.endian
}

// active returns the active bytes of the store.
func (r *Register) active() []byte {
	return r.store[:r.desc.Size]
}

// order returns the byte order of the active bytes.
func (r *Register) order() binary.ByteOrder {
	if r.endian == ENDIAN_LITTLE {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// raw returns the active bytes as an unsigned integer.
func (r *Register) raw() (u uint64) {
	data := r.active()
	order := r.order()

	switch len(data) {
	case 1:
		u = uint64(data[0])
	case 2:
		u = uint64(order.Uint16(data))
	case 4:
		u = uint64(order.Uint32(data))
	case 8:
		u = order.Uint64(data)
	}

	return
}

// setRaw stores the low Size() bytes of u.
func (r *Register) setRaw(u uint64) {
	data := r.active()
	order := r.order()

	switch len(data) {
	case 1:
		data[0] = uint8(u)
	case 2:
		order.PutUint16(data, uint16(u))
	case 4:
		order.PutUint32(data, uint32(u))
	case 8:
		order.PutUint64(data, u)
	}
}

// SetEndianness changes the byte order, reversing the active bytes.
func (r *Register) SetEndianness(endian Endianness) (err error) {
	switch endian {
	case ENDIAN_LITTLE, ENDIAN_BIG:
	default:
		err = &ErrUnknown{What: "endianness", Value: endian.String()}
		return
	}

	if endian == r.endian {
		return
	}

	slices.Reverse(r.active())
	r.endian = endian

	return
}

// SetSignedness relabels an integral type as signed or unsigned.
// The bit pattern is unchanged.
func (r *Register) SetSignedness(sign Signedness) (err error) {
	if r.desc.Category != CATEGORY_INTEGRAL {
		err = ErrFloatSignedness(r.desc.Type)
		return
	}

	switch sign {
	case SIGNED, UNSIGNED:
	default:
		err = &ErrUnknown{What: "signedness", Value: sign.String()}
		return
	}

	if sign == r.desc.Signedness {
		return
	}

	t, err := TypeOf(sign, r.desc.Size, r.desc.Category)
	if err != nil {
		return
	}

	err = r.SetType(t)
	return
}

// SetSize resizes the register within its current category.
// Floating point types accept 4 and 8, integral types accept 1, 2 and 4.
func (r *Register) SetSize(size int) (err error) {
	if size == r.desc.Size {
		return
	}

	t, err := TypeOf(r.desc.Signedness, size, r.desc.Category)
	if err != nil {
		return
	}

	err = r.SetType(t)
	return
}

// SetCategory resets the register to s32 or f64 holding zero.
func (r *Register) SetCategory(category Category) (err error) {
	var t Type

	switch category {
	case CATEGORY_INTEGRAL:
		t = TYPE_S32
	case CATEGORY_FLOATING:
		t = TYPE_F64
	default:
		err = &ErrUnknown{What: "category", Value: category.String()}
		return
	}

	if category == r.desc.Category {
		return
	}

	err = r.SetType(t)
	if err != nil {
		return
	}

	r.Clear()

	return
}

// SetType reinterprets the register as a new type.
//
// Growing extends the value at its most significant end, shrinking
// truncates the most significant bytes, independent of byte order.
// Widening a negative signed integral value to another integral type sign
// extends; all other growth zero fills.
func (r *Register) SetType(t Type) (err error) {
	desc, err := t.Descriptor()
	if err != nil {
		return
	}

	if t == r.desc.Type {
		return
	}

	old := r.desc
	big := r.endian == ENDIAN_BIG

	// Index 0 is the least significant byte while resizing.
	if big {
		slices.Reverse(r.store[:old.Size])
	}

	if desc.Size > old.Size {
		var fill byte
		if old.Category == CATEGORY_INTEGRAL && desc.Category == CATEGORY_INTEGRAL &&
			old.Signedness == SIGNED && (r.store[old.Size-1]&0x80) != 0 {
			fill = 0xff
		}
		for n := old.Size; n < desc.Size; n++ {
			r.store[n] = fill
		}
	}

	if big {
		slices.Reverse(r.store[:desc.Size])
	}

	r.desc = desc

	if r.Verbose {
		log.Printf("scalar: type %v -> %v", old.Type, t)
	}

	return
}

// String returns the register state as a string.
func (r *Register) String() (text string) {
	var byteText []string
	for _, b := range r.active() {
		byteText = append(byteText, fmt.Sprintf("%02x", b))
	}

	var bitText []string
	bits := r.Bits()
	for n := 0; n < len(bits); n += 8 {
		var group string
		for _, bit := range bits[n : n+8] {
			group += strconv.Itoa(int(bit))
		}
		bitText = append(bitText, group)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"type", r.desc.Type.String()},
		{"endian", r.endian.String()},
		{"value", strconv.FormatFloat(r.Value(), 'g', -1, 64)},
		{"bytes", strings.Join(byteText, " ")},
		{"bits", strings.Join(bitText, "_")},
	}

	for _, field := range fields {
		text += fmt.Sprintf("% 6s: %v\n", field.name, field.value)
	}

	return
}
