package vm

// R-type: register-register ALU operations. All ten share the same
// decode shape; only the executor differs, so decodeRtype is shared and
// each catalog entry supplies its own arithmetic closure.

func decodeRtype(instruction uint32, registers *[32]int32, address uint32, exec func(r1, r2 int32) int32) *IdEx {
	r1 := decodeRs1(instruction)
	r2 := decodeRs2(instruction)
	operands := &Operands{
		Format: FormatR,
		Rd:     decodeRd(instruction),
		R1:     r1,
		R2:     r2,
		R1Val:  registers[r1],
		R2Val:  registers[r2],
	}
	return &IdEx{
		Operands: operands,
		Address:  address,
		Execute: func(id *IdEx) ExecuteResult {
			o := id.Operands
			if o.Format != FormatR {
				panic("vm: decode/execute format mismatch in r-type executor")
			}
			rd := o.Rd
			return ExecuteResult{
				ExMem: ExMem{
					Rd:                &rd,
					CalculationResult: exec(o.R1Val, o.R2Val),
					Operands:          o,
				},
			}
		},
	}
}

func rtypeEntry(funct3, funct7 uint32, exec func(r1, r2 int32) int32) Definition {
	mask, match := rMask(opOp, funct3, funct7)
	return Definition{
		Mask:     mask,
		MatchVal: match,
		Decode: func(instruction uint32, registers *[32]int32, address uint32) *IdEx {
			return decodeRtype(instruction, registers, address, exec)
		},
	}
}

var rtypeCatalog = []Definition{
	rtypeEntry(f3Add, f7Zero, func(r1, r2 int32) int32 { return r1 + r2 }),
	rtypeEntry(f3Add, f7Alt, func(r1, r2 int32) int32 { return r1 - r2 }),
	rtypeEntry(f3Xor, f7Zero, func(r1, r2 int32) int32 { return r1 ^ r2 }),
	rtypeEntry(f3Or, f7Zero, func(r1, r2 int32) int32 { return r1 | r2 }),
	rtypeEntry(f3And, f7Zero, func(r1, r2 int32) int32 { return r1 & r2 }),
	rtypeEntry(f3Sll, f7Zero, func(r1, r2 int32) int32 { return r1 << (uint32(r2) & 0x1f) }),
	rtypeEntry(f3Srl, f7Zero, func(r1, r2 int32) int32 { return int32(uint32(r1) >> (uint32(r2) & 0x1f)) }),
	rtypeEntry(f3Srl, f7Alt, func(r1, r2 int32) int32 { return r1 >> (uint32(r2) & 0x1f) }),
	rtypeEntry(f3Slt, f7Zero, func(r1, r2 int32) int32 {
		if r1 < r2 {
			return 1
		}
		return 0
	}),
	rtypeEntry(f3Sltu, f7Zero, func(r1, r2 int32) int32 {
		if uint32(r1) < uint32(r2) {
			return 1
		}
		return 0
	}),
}
