package vm

// S-type: stores. Effective address = r1_val + imm; the MEM stage writes
// r2_val truncated to the configured width. r2_val is preserved in the
// EX/MEM latch's Operands (duplicated rather than aliased) so MEM can
// recover it after EX/MEM has moved on.

func storeEntry(funct3 uint32, width MemoryWidth) Definition {
	mask, match := iMask(opStore, funct3)
	return Definition{
		Mask:     mask,
		MatchVal: match,
		Decode: func(instruction uint32, registers *[32]int32, address uint32) *IdEx {
			r1 := decodeRs1(instruction)
			r2 := decodeRs2(instruction)
			operands := &Operands{
				Format: FormatS,
				R1:     r1,
				R2:     r2,
				R1Val:  registers[r1],
				R2Val:  registers[r2],
				Imm:    decodeImmS(instruction),
			}
			return &IdEx{
				Operands: operands,
				MemOp:    &MemoryOp{IsLoad: false, Width: width},
				Address:  address,
				Execute: func(id *IdEx) ExecuteResult {
					o := id.Operands
					if o.Format != FormatS {
						panic("vm: decode/execute format mismatch in store executor")
					}
					dup := *o
					return ExecuteResult{
						ExMem: ExMem{
							CalculationResult: o.R1Val + o.Imm,
							Operands:          &dup,
							MemOp:             id.MemOp,
						},
					}
				},
			}
		},
	}
}

var storeCatalog = []Definition{
	storeEntry(f3Sb, WidthByte),
	storeEntry(f3Sh, WidthHalf),
	storeEntry(f3Sw, WidthWord),
}
