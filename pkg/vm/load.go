package vm

// Loads decode as I-type (effective address = r1_val + imm) but defer
// the actual memory read to MEM, so they get their own decoder rather
// than reusing decodeItype's pure-ALU executor.

func loadEntry(funct3 uint32, width MemoryWidth) Definition {
	mask, match := iMask(opLoad, funct3)
	return Definition{
		Mask:     mask,
		MatchVal: match,
		Decode: func(instruction uint32, registers *[32]int32, address uint32) *IdEx {
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
				MemOp:    &MemoryOp{IsLoad: true, Width: width},
				Address:  address,
				Execute: func(id *IdEx) ExecuteResult {
					o := id.Operands
					if o.Format != FormatI {
						panic("vm: decode/execute format mismatch in load executor")
					}
					rd := o.Rd
					return ExecuteResult{
						ExMem: ExMem{
							Rd:                &rd,
							CalculationResult: o.R1Val + o.Imm,
							Operands:          o,
							MemOp:             id.MemOp,
						},
					}
				},
			}
		},
	}
}

var loadCatalog = []Definition{
	loadEntry(f3Lb, WidthByte),
	loadEntry(f3Lh, WidthHalf),
	loadEntry(f3Lw, WidthWord),
	loadEntry(f3Lbu, WidthByteUnsigned),
	loadEntry(f3Lhu, WidthHalfUnsigned),
}
