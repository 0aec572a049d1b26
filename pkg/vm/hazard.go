package vm

// HazardStrategy selects how the hazard controller reacts to a detected
// RAW dependency.
type HazardStrategy int

const (
	// Bypassing forwards results from EX/MEM and MEM/WB directly into a
	// dependent instruction's decoded operands, stalling only for a
	// load whose value isn't available until MEM. This is the default.
	Bypassing HazardStrategy = iota

	// Interlock disables forwarding entirely: any EX/MEM or MEM/WB hit
	// stalls, never forwards.
	Interlock
)

// hazardAction is the hazard controller's verdict for one decoded
// instruction.
type hazardAction int

const (
	hazardNone hazardAction = iota
	hazardStall
	hazardForwardExecute
	hazardForwardMemory
)

// hazardResult pairs the action with which source register(s) it
// applies to. When both sources match the same producer, both are
// forwarded rather than only one: a single shared flag would lose the
// second match entirely.
type hazardResult struct {
	action     hazardAction
	forwardR1  bool
	forwardR2  bool
}

// sourceRegisters extracts the source register indices read by a
// decoded instruction, per its operand format. R0 may appear in the
// result; detectDataHazard never matches it, because it ignores any
// producer whose destination is R0 (writes to it never change state).
func sourceRegisters(o *Operands) []int {
	if o == nil {
		return nil
	}
	switch o.Format {
	case FormatR, FormatS, FormatB:
		return []int{o.R1, o.R2}
	case FormatI:
		return []int{o.R1}
	default: // FormatU, FormatJ
		return nil
	}
}

// detectDataHazard checks a newly decoded instruction's source registers
// against the machine's current EX/MEM and MEM/WB latches and decides
// whether decode should stall, forward, or proceed unchanged.
func (m *Machine) detectDataHazard(idEx *IdEx) hazardResult {
	sources := sourceRegisters(idEx.Operands)
	if len(sources) == 0 {
		return hazardResult{action: hazardNone}
	}

	if m.ExMem != nil && m.ExMem.Rd != nil && *m.ExMem.Rd != 0 {
		r1Hit := len(sources) > 0 && sources[0] == *m.ExMem.Rd
		r2Hit := len(sources) > 1 && sources[1] == *m.ExMem.Rd
		if r1Hit || r2Hit {
			if m.HazardStrategy == Interlock {
				return hazardResult{action: hazardStall}
			}
			if m.ExMem.MemOp != nil && m.ExMem.MemOp.IsLoad {
				return hazardResult{action: hazardStall}
			}
			return hazardResult{action: hazardForwardExecute, forwardR1: r1Hit, forwardR2: r2Hit}
		}
	}

	if m.MemWb != nil {
		r1Hit := len(sources) > 0 && sources[0] == m.MemWb.Rd && m.MemWb.Rd != 0
		r2Hit := len(sources) > 1 && sources[1] == m.MemWb.Rd && m.MemWb.Rd != 0
		if r1Hit || r2Hit {
			if m.HazardStrategy == Interlock {
				return hazardResult{action: hazardStall}
			}
			return hazardResult{action: hazardForwardMemory, forwardR1: r1Hit, forwardR2: r2Hit}
		}
	}

	return hazardResult{action: hazardNone}
}

// applyForward overwrites the decoded operand's R1Val/R2Val in place
// per the hazard result, sourcing from value.
func applyForward(o *Operands, result hazardResult, value int32) {
	if result.forwardR1 {
		o.R1Val = value
	}
	if result.forwardR2 {
		o.R2Val = value
	}
}
