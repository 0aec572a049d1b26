package vm

// I-type: register-immediate ALU operations (ADDI, XORI, ORI, ANDI,
// SLTI, SLTIU, SLLI, SRLI, SRAI). Loads also decode as I-type but are
// defined in load.go because their executor produces a memory operation
// rather than a pure ALU result.

func decodeItype(instruction uint32, registers *[32]int32, address uint32, exec func(r1, imm int32) int32) *IdEx {
	r1 := decodeRs1(instruction)
	operands := &Operands{
		Format: FormatI,
		Rd:     decodeRd(instruction),
		R1:     r1,
		R1Val:  registers[r1],
		Imm:    decodeImmI(instruction),
	}
	return &IdEx{
		Operands: operands,
		Address:  address,
		Execute: func(id *IdEx) ExecuteResult {
			o := id.Operands
			if o.Format != FormatI {
				panic("vm: decode/execute format mismatch in i-type executor")
			}
			rd := o.Rd
			return ExecuteResult{
				ExMem: ExMem{
					Rd:                &rd,
					CalculationResult: exec(o.R1Val, o.Imm),
					Operands:          o,
				},
			}
		},
	}
}

func itypeEntry(funct3 uint32, exec func(r1, imm int32) int32) Definition {
	mask, match := iMask(opOpImm, funct3)
	return Definition{
		Mask:     mask,
		MatchVal: match,
		Decode: func(instruction uint32, registers *[32]int32, address uint32) *IdEx {
			return decodeItype(instruction, registers, address, exec)
		},
	}
}

// shiftEntry handles SLLI/SRLI/SRAI, whose immediate's low 5 bits are the
// shift amount and whose immediate's funct7-shaped upper bits distinguish
// SRLI from SRAI (mirroring the R-type SRL/SRA split).
func shiftEntry(funct3, funct7 uint32, exec func(r1 int32, shamt uint32) int32) Definition {
	mask, match := iShiftMask(opOpImm, funct3, funct7)
	return Definition{
		Mask:     mask,
		MatchVal: match,
		Decode: func(instruction uint32, registers *[32]int32, address uint32) *IdEx {
			return decodeItype(instruction, registers, address, func(r1, imm int32) int32 {
				return exec(r1, uint32(imm)&0x1f)
			})
		},
	}
}

var itypeCatalog = []Definition{
	itypeEntry(f3Add, func(r1, imm int32) int32 { return r1 + imm }),
	itypeEntry(f3Xor, func(r1, imm int32) int32 { return r1 ^ imm }),
	itypeEntry(f3Or, func(r1, imm int32) int32 { return r1 | imm }),
	itypeEntry(f3And, func(r1, imm int32) int32 { return r1 & imm }),
	itypeEntry(f3Slt, func(r1, imm int32) int32 {
		if r1 < imm {
			return 1
		}
		return 0
	}),
	itypeEntry(f3Sltu, func(r1, imm int32) int32 {
		if uint32(r1) < uint32(imm) {
			return 1
		}
		return 0
	}),
	shiftEntry(f3Sll, f7Zero, func(r1 int32, shamt uint32) int32 { return r1 << shamt }),
	shiftEntry(f3Srl, f7Zero, func(r1 int32, shamt uint32) int32 { return int32(uint32(r1) >> shamt) }),
	shiftEntry(f3Srl, f7Alt, func(r1 int32, shamt uint32) int32 { return r1 >> shamt }),
}
