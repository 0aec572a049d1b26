package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Each immediate decoder must recover exactly the value the encoding
// scatters across an instruction word; these round-trip the scattered
// field layout in reverse to build test words rather than trusting a
// second, independent encoder that could share the same mistake.

func encodeItypeImm(imm int32) uint32 {
	return uint32(imm) << 20
}

func TestDecodeImmI_RoundTrip(t *testing.T) {
	for _, imm := range []int32{0, 1, -1, 5, 2047, -2048} {
		word := encodeItypeImm(imm)
		assert.Equal(t, imm, decodeImmI(word), "imm=%d", imm)
	}
}

func encodeStypeImm(imm int32) uint32 {
	u := uint32(imm) & 0xfff
	imm115 := (u >> 5) & 0x7f
	imm40 := u & 0x1f
	return (imm115 << 25) | (imm40 << 7)
}

func TestDecodeImmS_RoundTrip(t *testing.T) {
	for _, imm := range []int32{0, 1, -1, 4, -4, 2047, -2048} {
		word := encodeStypeImm(imm)
		assert.Equal(t, imm, decodeImmS(word), "imm=%d", imm)
	}
}

func encodeBtypeImm(imm int32) uint32 {
	u := uint32(imm) & 0x1fff
	imm12 := (u >> 12) & 0x1
	imm11 := (u >> 11) & 0x1
	imm105 := (u >> 5) & 0x3f
	imm41 := (u >> 1) & 0xf
	return (imm12 << 31) | (imm105 << 25) | (imm41 << 8) | (imm11 << 7)
}

func TestDecodeImmB_RoundTrip(t *testing.T) {
	for _, imm := range []int32{0, 8, -8, 4094, -4096} {
		word := encodeBtypeImm(imm)
		assert.Equal(t, imm, decodeImmB(word), "imm=%d", imm)
	}
}

func encodeUtypeImm(imm int32) uint32 {
	return uint32(imm) << 12
}

func TestDecodeImmU_RoundTrip(t *testing.T) {
	for _, imm := range []int32{0, 1, 42, 0xfffff} {
		word := encodeUtypeImm(imm)
		assert.Equal(t, imm, decodeImmU(word))
	}
}

func encodeJtypeImm(imm int32) uint32 {
	u := uint32(imm) & 0x1fffff
	imm20 := (u >> 20) & 0x1
	imm1912 := (u >> 12) & 0xff
	imm11 := (u >> 11) & 0x1
	imm101 := (u >> 1) & 0x3ff
	return (imm20 << 31) | (imm1912 << 12) | (imm11 << 20) | (imm101 << 21)
}

func TestDecodeImmJ_RoundTrip(t *testing.T) {
	for _, imm := range []int32{0, 8, -8, 1048574, -1048576} {
		word := encodeJtypeImm(imm)
		assert.Equal(t, imm, decodeImmJ(word), "imm=%d", imm)
	}
}

func TestDecodeFields(t *testing.T) {
	// opcode=0x13, funct3=0x2, funct7=0x00, rd=5, rs1=10, rs2=20.
	word := uint32(0x13) | (5 << 7) | (2 << 12) | (10 << 15) | (20 << 20)
	assert.EqualValues(t, 0x13, decodeOpcode(word))
	assert.EqualValues(t, 2, decodeFunct3(word))
	assert.EqualValues(t, 5, decodeRd(word))
	assert.EqualValues(t, 10, decodeRs1(word))
	assert.EqualValues(t, 20, decodeRs2(word))
}

func TestDefinitionMatches(t *testing.T) {
	d := Definition{Mask: maskOpcodeFunct3, MatchVal: (f3Add << 12) | opOpImm}
	assert.True(t, d.Matches(0x00500093)) // addi x1, x0, 5
	assert.False(t, d.Matches(0x00500033))
}
