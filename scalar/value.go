// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"log"
	"math"
)

// Value decodes the active bytes under the current type and byte order.
func (r *Register) Value() (value float64) {
	u := r.raw()

	switch r.desc.Type {
	case TYPE_S8:
		value = float64(int8(u))
	case TYPE_U8:
		value = float64(uint8(u))
	case TYPE_S16:
		value = float64(int16(u))
	case TYPE_U16:
		value = float64(uint16(u))
	case TYPE_S32:
		value = float64(int32(u))
	case TYPE_U32:
		value = float64(uint32(u))
	case TYPE_F32:
		value = float64(math.Float32frombits(uint32(u)))
	case TYPE_F64:
		value = math.Float64frombits(u)
	}

	return
}

// encode stores v, which must fit the current type.
func (r *Register) encode(v float64) {
	var u uint64

	switch r.desc.Type {
	case TYPE_S8, TYPE_S16, TYPE_S32:
		u = uint64(int64(v))
	case TYPE_U8, TYPE_U16, TYPE_U32:
		u = uint64(v)
	case TYPE_F32:
		u = uint64(math.Float32bits(float32(v)))
	case TYPE_F64:
		u = math.Float64bits(v)
	}

	r.setRaw(u)
}

// SetValue encodes v under the current type.
//
// If the current type cannot hold v exactly, the register is first
// promoted to the type selected by Promote(v).
func (r *Register) SetValue(v float64) (err error) {
	t := r.desc.Type

	if !t.Fits(v) {
		t = Promote(v)
		if !t.Fits(v) {
			err = &ErrValue{Type: t, Value: v}
			return
		}

		if r.Verbose {
			log.Printf("scalar: promote %v -> %v for %v", r.desc.Type, t, v)
		}

		err = r.SetType(t)
		if err != nil {
			return
		}
	}

	r.encode(v)

	return
}
