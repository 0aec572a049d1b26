package asm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rv32pipe/pkg/asm"
)

func TestParseLine_LiValid(t *testing.T) {
	cases := []struct {
		line     string
		register int
		imm      int32
	}{
		{"li x1, 5", 1, 5},
		{"li x2,-10", 2, -10},
		{"  li x3, 0", 3, 0},
		{"li t6, 42", 6, 42},
	}
	for _, c := range cases {
		instr, err := asm.ParseLine(c.line)
		require.NoError(t, err, "line %q", c.line)
		assert.Equal(t, c.register, instr.Register, "line %q", c.line)
		assert.Equal(t, c.imm, instr.Immediate, "line %q", c.line)
	}
}

func TestParseLine_EmptyLine(t *testing.T) {
	_, err := asm.ParseLine("   ")
	require.Error(t, err)
	var parseErr *asm.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, asm.EmptyLine, parseErr.Kind)
}

func TestParseLine_UnknownOpcode(t *testing.T) {
	_, err := asm.ParseLine("add x1, x2, x3")
	var parseErr *asm.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, asm.UnknownOpcode, parseErr.Kind)
	assert.Equal(t, "add", parseErr.Opcode)
}

func TestParseLine_OperandMismatch(t *testing.T) {
	_, err := asm.ParseLine("li x1")
	var parseErr *asm.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, asm.OperandMismatch, parseErr.Kind)
}

func TestParseLine_InvalidRegister(t *testing.T) {
	_, err := asm.ParseLine("li y1, 5")
	var parseErr *asm.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, asm.InvalidRegister, parseErr.Kind)
}

func TestParseLine_InvalidImmediate(t *testing.T) {
	_, err := asm.ParseLine("li x1, abc")
	var parseErr *asm.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, asm.InvalidImmediate, parseErr.Kind)
}

func TestParseError_ErrorStrings(t *testing.T) {
	errs := []*asm.ParseError{
		{Kind: asm.EmptyLine},
		{Kind: asm.UnknownOpcode, Opcode: "mv"},
		{Kind: asm.OperandMismatch, Expected: 2, Found: 1},
		{Kind: asm.InvalidRegister, Text: "zz"},
		{Kind: asm.InvalidImmediate, Text: "xyz"},
	}
	for _, e := range errs {
		assert.NotEmpty(t, e.Error())
	}
}
