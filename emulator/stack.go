// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/scalar/scalar"
)

const (
	STACK_LIMIT = 16 // Maximum number of saved registers.
)

// Stack of saved register snapshots, for 'push' and 'pop'.
type Stack struct {
	Data []scalar.Register
}

// Push saves a snapshot of the register.
func (s *Stack) Push(reg *scalar.Register) (err error) {
	if s.Full() {
		err = ErrStackFull
		return
	}

	s.Data = append(s.Data, *reg)
	return
}

// Pop restores the most recently saved snapshot into the register.
func (s *Stack) Pop(reg *scalar.Register) (err error) {
	if s.Empty() {
		err = ErrStackEmpty
		return
	}

	*reg = s.Data[len(s.Data)-1]
	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= STACK_LIMIT
}

func (s *Stack) Reset() {
	clear(s.Data)
	s.Data = s.Data[:0]
}
