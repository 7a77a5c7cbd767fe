// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/scalar/program"
	"github.com/ezrec/scalar/translate"
)

var f = translate.From

var (
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))
	ErrCode       = errors.New(f("code invalid"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpect is a failed 'expect' check.
type ErrExpect struct {
	What program.Code
	Want any
	Got  any
}

func (err *ErrExpect) Error() string {
	return f("expect %v: want %v, got %v", err.What, err.Want, err.Got)
}
