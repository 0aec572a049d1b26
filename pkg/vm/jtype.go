package vm

// J-type: JAL, the only unconditional jump in this catalog. Always
// taken: NewPC = address + imm, and the link value address+4 is written
// to rd.

var jtypeCatalog = []Definition{
	{
		Mask:     maskOpcode,
		MatchVal: opJal,
		Decode: func(instruction uint32, _ *[32]int32, address uint32) *IdEx {
			operands := &Operands{
				Format: FormatJ,
				Rd:     decodeRd(instruction),
				Imm:    decodeImmJ(instruction),
			}
			return &IdEx{
				Operands: operands,
				Address:  address,
				Execute: func(id *IdEx) ExecuteResult {
					o := id.Operands
					if o.Format != FormatJ {
						panic("vm: decode/execute format mismatch in jal executor")
					}
					rd := o.Rd
					newPC := id.Address + uint32(o.Imm)
					return ExecuteResult{
						ExMem: ExMem{
							Rd:                &rd,
							CalculationResult: int32(id.Address) + 4,
							Operands:          o,
						},
						Flush: true,
						NewPC: &newPC,
					}
				},
			}
		},
	},
}
