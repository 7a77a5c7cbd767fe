// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"github.com/ezrec/scalar/scalar"
)

// Code is a register command.
type Code int

//go:generate go tool stringer -linecomment -type=Code
const (
	CODE_TYPE     = Code(0)  // type
	CODE_SIGN     = Code(1)  // sign
	CODE_SIZE     = Code(2)  // size
	CODE_CATEGORY = Code(3)  // category
	CODE_ENDIAN   = Code(4)  // endian
	CODE_VALUE    = Code(5)  // value
	CODE_BYTES    = Code(6)  // bytes
	CODE_BITS     = Code(7)  // bits
	CODE_CLEAR    = Code(8)  // clear
	CODE_FLIP     = Code(9)  // flip
	CODE_SHL      = Code(10) // shl
	CODE_SHR      = Code(11) // shr
	CODE_INC      = Code(12) // inc
	CODE_DEC      = Code(13) // dec
	CODE_PUSH     = Code(14) // push
	CODE_POP      = Code(15) // pop
	CODE_PRINT    = Code(16) // print
	CODE_EXPECT   = Code(17) // expect
)

// codeMap maps command names to codes.
var codeMap = map[string]Code{}

func init() {
	for code := CODE_TYPE; code <= CODE_EXPECT; code++ {
		codeMap[code.String()] = code
	}
}

// Checkable returns true if the code names a property that 'expect' can check.
func (code Code) Checkable() bool {
	return code <= CODE_BITS
}

// Operand is the decoded argument of an opcode.
type Operand struct {
	Type       scalar.Type       // CODE_TYPE
	Signedness scalar.Signedness // CODE_SIGN
	Category   scalar.Category   // CODE_CATEGORY
	Endianness scalar.Endianness // CODE_ENDIAN
	Number     float64           // CODE_VALUE, CODE_SIZE, CODE_SHL, CODE_SHR
	Bytes      []byte            // CODE_BYTES
	Bits       []uint8           // CODE_BITS
}

// Opcode is a single assembled command.
type Opcode struct {
	LineNo  int      // Source line number.
	Words   []string // Words of the command, after expansion.
	Code    Code     // Command.
	Expect  Code     // Property checked, for CODE_EXPECT.
	Operand Operand  // Decoded argument.
}
