// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package scalar

import (
	"errors"

	"github.com/ezrec/scalar/translate"
)

var f = translate.From

var (
	// Error classes. Every register error matches one of these with errors.Is().
	ErrInvalidOperation = errors.New(f("invalid operation"))
	ErrLengthMismatch   = errors.New(f("length mismatch"))
	ErrRange            = errors.New(f("out of range"))
)

// ErrFloatSignedness is returned when changing the signedness of a floating point type.
type ErrFloatSignedness Type

func (err ErrFloatSignedness) Error() string {
	return f("%v: signedness of a floating point type is fixed", Type(err))
}

func (err ErrFloatSignedness) Unwrap() error {
	return ErrInvalidOperation
}

// ErrSize is returned when no type of the category has the requested size.
type ErrSize struct {
	Signedness Signedness
	Size       int
	Category   Category
}

func (err *ErrSize) Error() string {
	if err.Category == CATEGORY_INTEGRAL {
		return f("unsupported %v %v size %d", err.Signedness, err.Category, err.Size)
	}
	return f("unsupported %v size %d", err.Category, err.Size)
}

func (err *ErrSize) Unwrap() error {
	return ErrInvalidOperation
}

// ErrUnknown is returned for an unknown type, signedness, category or endianness.
type ErrUnknown struct {
	What  string
	Value string
}

func (err *ErrUnknown) Error() string {
	return f("unknown %v '%v'", err.What, err.Value)
}

func (err *ErrUnknown) Unwrap() error {
	return ErrInvalidOperation
}

// ErrLength is returned when a byte or bit array does not match the register size.
type ErrLength struct {
	What string // "byte" or "bit"
	Want int
	Got  int
}

func (err *ErrLength) Error() string {
	return f("%v array length %d, expected %d", err.What, err.Got, err.Want)
}

func (err *ErrLength) Unwrap() error {
	return ErrLengthMismatch
}

// ErrShiftCount is returned for a shift count outside of [0, Limit].
type ErrShiftCount struct {
	Count int
	Limit int
}

func (err *ErrShiftCount) Error() string {
	return f("shift count %d not in [0, %d]", err.Count, err.Limit)
}

func (err *ErrShiftCount) Unwrap() error {
	return ErrRange
}

// ErrValue is returned when a value cannot be encoded by any type.
type ErrValue struct {
	Type  Type
	Value float64
}

func (err *ErrValue) Error() string {
	return f("%v: value %v cannot be encoded", err.Type, err.Value)
}

func (err *ErrValue) Unwrap() error {
	return ErrRange
}
