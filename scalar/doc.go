// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package scalar implements a scalar register emulator.
//
// A Register is an 8 byte store that is reinterpreted as one of eight
// numeric encodings (s8, u8, s16, u16, s32, u32, f32 and f64) under a
// selectable byte order. The value, byte and bit views of the register are
// always consistent with each other, and the register supports clearing,
// bit flipping, logical and arithmetic shifts, and two's complement
// wraparound increment and decrement.
//
// Assigning a value that the current type cannot hold promotes the register
// to the narrowest type that can (s32, u32, f32, then f64).
package scalar
