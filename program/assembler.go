// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/scalar/scalar"
)

// Macro represents a macro definition in the command language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

func init() {
	for t := range scalar.Types() {
		lo, hi := t.Limits()
		name := strings.ToUpper(t.String())
		sysEquate[name+"_MIN"] = FormatNumber(lo)
		sysEquate[name+"_MAX"] = FormatNumber(hi)
	}
}

// Defines returns an iterator over the predefined equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(sysEquate)
}

// FormatNumber formats a number so that it parses back exactly.
func FormatNumber(value float64) string {
	if value == math.Trunc(value) && math.Abs(value) < (1<<53) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// valueOf returns the value of a simple word.
// Integers accept 0x, 0o and 0b prefixes; anything else is parsed as a float.
func valueOf(word string) (value float64, err error) {
	i64, err := strconv.ParseInt(word, 0, 64)
	if err == nil {
		value = float64(i64)
		return
	}

	value, err = strconv.ParseFloat(word, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// Assembler is a single pass macro assembler for register scripts.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value float64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v, err := valueOf(str)
		if err != nil {
			// Ignore non-numeric equates. They may be type
			// names or something else.
			continue
		}
		if v == math.Trunc(v) && math.Abs(v) < (1<<63) {
			pred[key] = starlark.MakeInt64(int64(v))
		} else {
			pred[key] = starlark.Float(v)
		}
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		i64, ok := rc.Int64()
		if ok {
			value = float64(i64)
		} else {
			value = float64(rc.Float())
		}
	case starlark.Float:
		value = float64(rc)
	default:
		err = ErrParseExpression(expr)
	}

	return
}

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return FormatNumber(value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// parseOperand decodes the arguments of a command.
func parseOperand(code Code, args []string) (arg Operand, err error) {
	switch code {
	case CODE_CLEAR, CODE_FLIP, CODE_INC, CODE_DEC, CODE_PUSH, CODE_POP, CODE_PRINT:
		if len(args) != 0 {
			err = ErrOpcodeExtraArgs
		}
		return
	case CODE_BYTES:
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, word := range args {
			value, _err := valueOf(word)
			if _err != nil || value != math.Trunc(value) || value < 0 || value > 0xff {
				err = ErrParseByte(word)
				return
			}
			arg.Bytes = append(arg.Bytes, byte(value))
		}
		return
	case CODE_BITS:
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		text := strings.ReplaceAll(strings.Join(args, ""), "_", "")
		for _, c := range text {
			switch c {
			case '0':
				arg.Bits = append(arg.Bits, 0)
			case '1':
				arg.Bits = append(arg.Bits, 1)
			default:
				err = ErrParseBits(text)
				return
			}
		}
		return
	}

	if len(args) == 0 {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	word := args[0]
	switch code {
	case CODE_TYPE:
		arg.Type, err = scalar.ParseType(word)
	case CODE_SIGN:
		arg.Signedness, err = scalar.ParseSignedness(word)
	case CODE_CATEGORY:
		arg.Category, err = scalar.ParseCategory(word)
	case CODE_ENDIAN:
		arg.Endianness, err = scalar.ParseEndianness(word)
	case CODE_VALUE:
		arg.Number, err = valueOf(word)
	case CODE_SIZE, CODE_SHL, CODE_SHR:
		arg.Number, err = valueOf(word)
		if err == nil && (arg.Number != math.Trunc(arg.Number) || math.Abs(arg.Number) > math.MaxInt32) {
			err = ErrParseNumber(word)
		}
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// parseWords evaluates the words of a line of command text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	code, ok := codeMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	op := Opcode{
		LineNo: lineno,
		Words:  slices.Clone(words),
		Code:   code,
	}

	args := words[1:]
	if code == CODE_EXPECT {
		if len(args) == 0 {
			err = ErrOpcodeMissing
			return
		}
		op.Expect, ok = codeMap[args[0]]
		if !ok || !op.Expect.Checkable() {
			err = ErrExpectInvalid
			return
		}
		code = op.Expect
		args = args[1:]
	}

	op.Operand, err = parseOperand(code, args)
	if err != nil {
		return
	}

	asm.Opcode = append(asm.Opcode, op)

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
				Args:   words[2:],
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
