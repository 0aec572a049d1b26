package vm

// Machine is a five-stage pipelined RV32I core instance. It owns the
// register file, memory, program counter, cycle counter, and the four
// inter-stage latches. It is not goroutine-safe; a single goroutine
// should drive it.
type Machine struct {
	Registers [32]int32
	Memory    []byte
	PC        uint32
	Cycle     uint64

	HazardStrategy HazardStrategy

	IfId  *IfId
	IdEx  *IdEx
	ExMem *ExMem
	MemWb *MemWb

	stall bool
}

// New constructs a Machine with image placed at address 0. strategy
// selects the hazard mitigation the decode stage uses; the zero value
// (Bypassing) is the default.
func New(image []byte, strategy HazardStrategy) *Machine {
	memory := make([]byte, len(image))
	copy(memory, image)
	return &Machine{
		Memory:         memory,
		HazardStrategy: strategy,
	}
}
