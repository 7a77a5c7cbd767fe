// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program implements the assembler for register scripts.
//
// A script is a list of commands, one per line, that drive a scalar
// register. Comments start with ';'. The assembler supports '.equ NAME
// VALUE' equates, '.macro NAME arg...' / '.endm' macros, and compile-time
// '$(...)' expressions evaluated with Starlark.
package program
