package vm

// U-type: LUI and AUIPC. Both carry only rd and an unshifted 20-bit
// immediate; the executor applies the <<12.

func decodeUtype(instruction uint32, address uint32) *IdEx {
	operands := &Operands{
		Format: FormatU,
		Rd:     decodeRd(instruction),
		Imm:    decodeImmU(instruction),
	}
	return &IdEx{Operands: operands, Address: address}
}

var utypeCatalog = []Definition{
	{
		Mask:     maskOpcode,
		MatchVal: opLui,
		Decode: func(instruction uint32, _ *[32]int32, address uint32) *IdEx {
			id := decodeUtype(instruction, address)
			id.Execute = func(id *IdEx) ExecuteResult {
				o := id.Operands
				if o.Format != FormatU {
					panic("vm: decode/execute format mismatch in lui executor")
				}
				rd := o.Rd
				return ExecuteResult{ExMem: ExMem{
					Rd:                &rd,
					CalculationResult: o.Imm << 12,
					Operands:          o,
				}}
			}
			return id
		},
	},
	{
		Mask:     maskOpcode,
		MatchVal: opAuipc,
		Decode: func(instruction uint32, _ *[32]int32, address uint32) *IdEx {
			id := decodeUtype(instruction, address)
			id.Execute = func(id *IdEx) ExecuteResult {
				o := id.Operands
				if o.Format != FormatU {
					panic("vm: decode/execute format mismatch in auipc executor")
				}
				rd := o.Rd
				return ExecuteResult{ExMem: ExMem{
					Rd:                &rd,
					CalculationResult: int32(id.Address) + (o.Imm << 12),
					Operands:          o,
				}}
			}
			return id
		},
	},
}
