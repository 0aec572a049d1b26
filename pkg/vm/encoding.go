package vm

// RV32I opcode field values (bits [6:0]).
const (
	opOpImm  = 0b0010011 // register-immediate ALU ops
	opOp     = 0b0110011 // register-register ALU ops
	opLoad   = 0b0000011
	opStore  = 0b0100011
	opBranch = 0b1100011
	opLui    = 0b0110111
	opAuipc  = 0b0010111
	opJal    = 0b1101111
)

// funct3 field values (bits [14:12]), grouped by the opcode they apply to.
const (
	f3Add  = 0b000 // shared with SUB, distinguished by funct7
	f3Sll  = 0b001
	f3Slt  = 0b010
	f3Sltu = 0b011
	f3Xor  = 0b100
	f3Srl  = 0b101 // shared with SRA, distinguished by funct7
	f3Or   = 0b110
	f3And  = 0b111

	f3Lb  = 0b000
	f3Lh  = 0b001
	f3Lw  = 0b010
	f3Lbu = 0b100
	f3Lhu = 0b101

	f3Sb = 0b000
	f3Sh = 0b001
	f3Sw = 0b010

	f3Beq  = 0b000
	f3Bne  = 0b001
	f3Blt  = 0b100
	f3Bge  = 0b101
	f3Bltu = 0b110
	f3Bgeu = 0b111
)

// funct7 field values (bits [31:25]) that disambiguate SUB/SRA from
// ADD/SRL, and the shift-amount-only I-type shifts.
const (
	f7Zero = 0b0000000
	f7Alt  = 0b0100000
)

const (
	maskOpcode         = 0x7f
	maskOpcodeFunct3   = 0x707f
	maskOpcodeF3Funct7 = 0xfe00707f
)

func rMask(opcode, funct3, funct7 uint32) (mask, match uint32) {
	return maskOpcodeF3Funct7, (funct7 << 25) | (funct3 << 12) | opcode
}

func iShiftMask(opcode, funct3, funct7 uint32) (mask, match uint32) {
	// Shift-immediate encodings reuse the R-type funct7 field to
	// distinguish SRLI from SRAI; the shift amount itself lives in
	// rs2's bit positions (imm[4:0]).
	return maskOpcodeF3Funct7, (funct7 << 25) | (funct3 << 12) | opcode
}

func iMask(opcode, funct3 uint32) (mask, match uint32) {
	return maskOpcodeFunct3, (funct3 << 12) | opcode
}

