// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"math"
)

// Clear zeros the active bytes.
func (r *Register) Clear() {
	clear(r.active())
}

// Flip complements the active bytes.
func (r *Register) Flip() {
	data := r.active()
	for n := range data {
		data[n] = ^data[n]
	}
}

// shiftCount validates a shift count against the register width.
func (r *Register) shiftCount(count int) (err error) {
	width := r.desc.Size * 8
	if count < 0 || count > width {
		err = &ErrShiftCount{Count: count, Limit: width}
	}
	return
}

// ShiftLeft shifts the bits towards the most significant end, filling with zero.
func (r *Register) ShiftLeft(count int) (err error) {
	err = r.shiftCount(count)
	if err != nil {
		return
	}

	r.setRaw(r.raw() << uint(count))

	return
}

// ShiftRight shifts the bits towards the least significant end.
// Signed types (including floating point) shift arithmetically, unsigned
// types shift logically.
func (r *Register) ShiftRight(count int) (err error) {
	err = r.shiftCount(count)
	if err != nil {
		return
	}

	u := r.raw()
	if r.desc.Signedness == SIGNED {
		pad := uint(64 - r.desc.Size*8)
		u = uint64((int64(u<<pad) >> pad) >> uint(count))
	} else {
		u >>= uint(count)
	}

	r.setRaw(u)

	return
}

// Increment adds one, wrapping around on integral overflow.
func (r *Register) Increment() error {
	return r.step(1)
}

// Decrement subtracts one, wrapping around on integral underflow.
func (r *Register) Decrement() error {
	return r.step(-1)
}

// step sets the value plus delta, possibly promoting the register, then
// narrows the register back to its original type. Narrowing drops the
// high order bytes, giving two's complement wraparound.
func (r *Register) step(delta float64) (err error) {
	t := r.desc.Type

	value := r.Value()
	if math.IsNaN(value) {
		return
	}

	next := value + delta
	switch t {
	case TYPE_F32:
		next = float64(float32(next))
	case TYPE_S32, TYPE_U32:
		// No promoted type is wider than 32 integral bits.
		if !TYPE_S32.Fits(next) && !TYPE_U32.Fits(next) {
			next = float64(uint32(int64(next)))
		}
	}

	err = r.SetValue(next)
	if err != nil {
		return
	}

	err = r.SetType(t)
	return
}
