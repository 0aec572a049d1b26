package vm

// B-type: conditional branches. None carry a destination register. A
// taken branch sets NewPC = address + imm and requests a flush; an
// untaken branch changes nothing.

func branchEntry(funct3 uint32, taken func(r1, r2 int32) bool) Definition {
	mask, match := iMask(opBranch, funct3)
	return Definition{
		Mask:     mask,
		MatchVal: match,
		Decode: func(instruction uint32, registers *[32]int32, address uint32) *IdEx {
			r1 := decodeRs1(instruction)
			r2 := decodeRs2(instruction)
			operands := &Operands{
				Format: FormatB,
				R1:     r1,
				R2:     r2,
				R1Val:  registers[r1],
				R2Val:  registers[r2],
				Imm:    decodeImmB(instruction),
			}
			return &IdEx{
				Operands: operands,
				Address:  address,
				Execute: func(id *IdEx) ExecuteResult {
					o := id.Operands
					if o.Format != FormatB {
						panic("vm: decode/execute format mismatch in branch executor")
					}
					result := ExecuteResult{
						ExMem: ExMem{
							CalculationResult: 0,
							Operands:          o,
						},
					}
					if taken(o.R1Val, o.R2Val) {
						newPC := id.Address + uint32(o.Imm)
						result.NewPC = &newPC
						result.Flush = true
					}
					return result
				},
			}
		},
	}
}

var branchCatalog = []Definition{
	branchEntry(f3Beq, func(r1, r2 int32) bool { return r1 == r2 }),
	branchEntry(f3Bne, func(r1, r2 int32) bool { return r1 != r2 }),
	branchEntry(f3Blt, func(r1, r2 int32) bool { return r1 < r2 }),
	branchEntry(f3Bge, func(r1, r2 int32) bool { return r1 >= r2 }),
	branchEntry(f3Bltu, func(r1, r2 int32) bool { return uint32(r1) < uint32(r2) }),
	branchEntry(f3Bgeu, func(r1, r2 int32) bool { return uint32(r1) >= uint32(r2) }),
}
