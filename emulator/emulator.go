// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"math"
	"reflect"
	"strings"

	"github.com/ezrec/scalar/internal"
	"github.com/ezrec/scalar/program"
	"github.com/ezrec/scalar/scalar"
	"github.com/ezrec/scalar/translate"
)

var _emulator_defines = map[string]string{
	"STACK_LIMIT": fmt.Sprintf("%v", STACK_LIMIT),
	"STORE_SIZE":  fmt.Sprintf("%v", scalar.STORE_SIZE),
}

// Emulator state. Register + saved register stack + running program.
type Emulator struct {
	Verbose          bool             // If set, enables verbose logging.
	*scalar.Register                  // Reference to the working register.
	Program          *program.Program // Reference to the currently running program listing.
	Output           io.Writer        // Destination of 'print' commands.
	Stack            Stack            // Saved registers.

	ip int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Register: scalar.NewRegister(),
		Program:  &program.Program{},
		Output:   io.Discard,
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		program.Defines(),
	)
}

// Reset the emulator to a zero register of the boot type, and rewind the program.
func (emu *Emulator) Reset(boot scalar.Type, endian scalar.Endianness) (err error) {
	reg := scalar.NewRegister()

	err = reg.SetEndianness(endian)
	if err != nil {
		return
	}

	err = reg.SetType(boot)
	if err != nil {
		return
	}

	reg.Verbose = emu.Verbose
	emu.Register = reg
	emu.Stack.Reset()
	emu.ip = 0

	if emu.Verbose {
		log.Printf("emulator: reset %v %v", boot, endian)
	}

	return
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.ip
}

// Code returns the current instruction code.
func (emu *Emulator) Code() program.Code {
	for ip, code := range emu.Program.Codes() {
		if emu.ip == ip {
			return code
		}
	}

	return program.Code(-1)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.ip)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single command of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	op := emu.Program.Debug(emu.ip)
	if op == nil {
		done = true
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: op.LineNo, Err: err}
		}
	}()

	emu.Register.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("%4d: %v", op.LineNo, strings.Join(op.Words, " "))
	}

	err = emu.execute(op)
	if err != nil {
		return
	}

	emu.ip++

	return
}

// Run the program until it completes, or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

func (emu *Emulator) execute(op *program.Opcode) (err error) {
	reg := emu.Register
	arg := &op.Operand

	switch op.Code {
	case program.CODE_TYPE:
		err = reg.SetType(arg.Type)
	case program.CODE_SIGN:
		err = reg.SetSignedness(arg.Signedness)
	case program.CODE_SIZE:
		err = reg.SetSize(int(arg.Number))
	case program.CODE_CATEGORY:
		err = reg.SetCategory(arg.Category)
	case program.CODE_ENDIAN:
		err = reg.SetEndianness(arg.Endianness)
	case program.CODE_VALUE:
		err = reg.SetValue(arg.Number)
	case program.CODE_BYTES:
		err = reg.SetBytes(arg.Bytes)
	case program.CODE_BITS:
		err = reg.SetBits(arg.Bits)
	case program.CODE_CLEAR:
		reg.Clear()
	case program.CODE_FLIP:
		reg.Flip()
	case program.CODE_SHL:
		err = reg.ShiftLeft(int(arg.Number))
	case program.CODE_SHR:
		err = reg.ShiftRight(int(arg.Number))
	case program.CODE_INC:
		err = reg.Increment()
	case program.CODE_DEC:
		err = reg.Decrement()
	case program.CODE_PUSH:
		err = emu.Stack.Push(reg)
	case program.CODE_POP:
		err = emu.Stack.Pop(reg)
	case program.CODE_PRINT:
		_, err = translate.To(emu.Output, "%v", reg.String())
	case program.CODE_EXPECT:
		err = emu.expect(op)
	default:
		err = ErrCode
	}

	return
}

// expect compares a register property with the operand.
func (emu *Emulator) expect(op *program.Opcode) (err error) {
	reg := emu.Register
	arg := &op.Operand

	var want, got any
	switch op.Expect {
	case program.CODE_TYPE:
		want, got = arg.Type, reg.Type()
	case program.CODE_SIGN:
		want, got = arg.Signedness, reg.Signedness()
	case program.CODE_SIZE:
		want, got = int(arg.Number), reg.Size()
	case program.CODE_CATEGORY:
		want, got = arg.Category, reg.Category()
	case program.CODE_ENDIAN:
		want, got = arg.Endianness, reg.Endianness()
	case program.CODE_VALUE:
		// NaN matches NaN.
		value := reg.Value()
		if value == arg.Number || (math.IsNaN(value) && math.IsNaN(arg.Number)) {
			return
		}
		want, got = arg.Number, value
	case program.CODE_BYTES:
		want, got = arg.Bytes, reg.Bytes()
	case program.CODE_BITS:
		want, got = arg.Bits, reg.Bits()
	default:
		err = ErrCode
		return
	}

	if !reflect.DeepEqual(want, got) {
		err = &ErrExpect{What: op.Expect, Want: want, Got: got}
	}

	return
}
