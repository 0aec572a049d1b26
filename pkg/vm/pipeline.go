package vm

import "encoding/binary"

// StepNoPipeline runs fetch, decode, execute, memory and writeback for a
// single instruction within one call, advancing Cycle by 5. This is the
// non-pipelined path used to test per-instruction semantics in
// isolation, independent of hazards.
func (m *Machine) StepNoPipeline() {
	m.fetch()
	m.decode()
	m.execute()
	m.memory()
	m.writeback()
	// The instruction has fully retired, so the next call's decode must
	// not see its MEM/WB latch as an in-flight producer.
	m.MemWb = nil
	m.Cycle += 5
}

// Step advances every stage by one simulated cycle, in reverse pipeline
// order (WB, MEM, EX, ID, IF) so that a stage writing its output latch
// this cycle never overwrites a value a later stage still needs to read
// from the same cycle's start-of-cycle state.
func (m *Machine) Step() {
	m.writeback()
	m.memory()
	m.execute()
	m.decode()
	m.fetch()
	m.Cycle++
}

// Run calls Step until all four latches are simultaneously empty, i.e.
// the pipeline has drained.
func (m *Machine) Run() {
	for {
		m.Step()
		if m.IfId == nil && m.IdEx == nil && m.ExMem == nil && m.MemWb == nil {
			break
		}
	}
}

// fetch is the IF stage: reads the instruction word at PC, populates
// IF/ID with it and the fetch address, and advances PC by 4. A stall
// leaves IF/ID untouched so the same instruction re-enters decode next
// cycle; running past the end of memory clears IF/ID instead, draining
// the pipeline.
func (m *Machine) fetch() {
	if m.stall {
		return
	}
	pc := m.PC
	if uint64(pc)+4 <= uint64(len(m.Memory)) {
		instruction := binary.LittleEndian.Uint32(m.Memory[pc : pc+4])
		m.IfId = &IfId{Instruction: instruction, Address: pc}
		m.PC += 4
	} else {
		m.IfId = nil
	}
}

// decode is the ID stage: catalog lookup, hazard resolution, and
// forwarding.
func (m *Machine) decode() {
	m.stall = false

	if m.IfId == nil {
		m.IdEx = nil
		return
	}

	for i := range Catalog {
		def := &Catalog[i]
		if !def.Matches(m.IfId.Instruction) {
			continue
		}

		decoded := def.Decode(m.IfId.Instruction, &m.Registers, m.IfId.Address)

		result := m.detectDataHazard(decoded)
		switch result.action {
		case hazardForwardExecute:
			if m.ExMem != nil {
				applyForward(decoded.Operands, result, m.ExMem.CalculationResult)
			}
			m.IdEx = decoded
		case hazardForwardMemory:
			if m.MemWb != nil {
				applyForward(decoded.Operands, result, m.MemWb.Value)
			}
			m.IdEx = decoded
		case hazardStall:
			m.IdEx = nil
			m.stall = true
		default:
			m.IdEx = decoded
		}
		return
	}

	// No catalog entry matched: the instruction is effectively a no-op.
	m.IdEx = nil
}

// execute is the EX stage: runs the selected instruction's executor,
// applies any branch/jump target to PC, and flushes IF/ID and ID/EX when
// the executor reports a taken control-flow change.
func (m *Machine) execute() {
	if m.IdEx == nil {
		m.ExMem = nil
		return
	}

	idEx := m.IdEx
	result := idEx.Execute(idEx)

	if result.NewPC != nil {
		m.PC = *result.NewPC
	}
	if result.Flush {
		m.IfId = nil
		m.IdEx = nil
	}

	exMem := result.ExMem
	m.ExMem = &exMem
}

// memory is the MEM stage: for a load, reads the computed address and
// widens the result into the writeback value; for a store, writes the
// preserved r2 value truncated to width. An instruction with neither
// just carries its ALU result through to writeback unchanged.
func (m *Machine) memory() {
	exMem := m.ExMem
	m.ExMem = nil
	if exMem == nil {
		m.MemWb = nil
		return
	}

	addr := uint32(exMem.CalculationResult)
	value := exMem.CalculationResult

	if exMem.MemOp != nil {
		if exMem.MemOp.IsLoad {
			value = m.loadMemory(exMem.MemOp.Width, addr)
		} else if exMem.Operands != nil && exMem.Operands.Format == FormatS {
			m.storeMemory(exMem.MemOp.Width, addr, exMem.Operands.R2Val)
		}
	}

	if exMem.Rd != nil {
		m.MemWb = &MemWb{Rd: *exMem.Rd, Value: value}
	} else {
		m.MemWb = nil
	}
}

// loadMemory reads width-wide data at addr, sign- or zero-extending it
// to 32 bits per width. An out-of-range load is silent and returns 0.
func (m *Machine) loadMemory(width MemoryWidth, addr uint32) int32 {
	switch width {
	case WidthByte:
		if int(addr) >= len(m.Memory) {
			return 0
		}
		return int32(int8(m.Memory[addr]))
	case WidthByteUnsigned:
		if int(addr) >= len(m.Memory) {
			return 0
		}
		return int32(m.Memory[addr])
	case WidthHalf:
		if int(addr)+2 > len(m.Memory) {
			return 0
		}
		return int32(int16(binary.LittleEndian.Uint16(m.Memory[addr : addr+2])))
	case WidthHalfUnsigned:
		if int(addr)+2 > len(m.Memory) {
			return 0
		}
		return int32(binary.LittleEndian.Uint16(m.Memory[addr : addr+2]))
	case WidthWord:
		if int(addr)+4 > len(m.Memory) {
			return 0
		}
		return int32(binary.LittleEndian.Uint32(m.Memory[addr : addr+4]))
	default:
		panic("vm: unknown memory width")
	}
}

// storeMemory writes value truncated to width at addr. An out-of-range
// store is fatal: the slice write below panics on an out-of-range addr.
func (m *Machine) storeMemory(width MemoryWidth, addr uint32, value int32) {
	switch width {
	case WidthByte, WidthByteUnsigned:
		m.Memory[addr] = byte(value)
	case WidthHalf, WidthHalfUnsigned:
		binary.LittleEndian.PutUint16(m.Memory[addr:addr+2], uint16(value))
	case WidthWord:
		binary.LittleEndian.PutUint32(m.Memory[addr:addr+4], uint32(value))
	default:
		panic("vm: unknown memory width")
	}
}

// writeback is the WB stage. Register 0 is never written.
func (m *Machine) writeback() {
	if m.MemWb == nil {
		return
	}
	if m.MemWb.Rd != 0 {
		m.Registers[m.MemWb.Rd] = m.MemWb.Value
	}
}
