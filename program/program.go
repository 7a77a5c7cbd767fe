// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"fmt"
	"iter"
	"strings"
)

// Program is an assembled register script.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode at ip, or nil if ip is outside of the program.
func (prog *Program) Debug(ip int) (op *Opcode) {
	if ip >= 0 && ip < len(prog.Opcodes) {
		op = &prog.Opcodes[ip]
	}

	return
}

// Codes returns an iterator over the commands of the program.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for ip, op := range prog.Opcodes {
			if !yield(ip, op.Code) {
				return
			}
		}
	}
}

// String returns a listing of the program.
func (prog *Program) String() (text string) {
	for _, op := range prog.Opcodes {
		text += fmt.Sprintf("%4d: %v\n", op.LineNo, strings.Join(op.Words, " "))
	}

	return
}
