// Package vm contains the five-stage pipelined RV32I core.
//
// The architecture is a classical IF/ID/EX/MEM/WB pipeline over a flat
// byte-addressed memory and a 32-entry signed 32-bit register file. The
// instruction set is a subset of RV32I: see the per-format catalog files
// (rtype.go, itype.go, load.go, stype.go, btype.go, utype.go, jtype.go)
// for the opcodes each format implements.
//
// Instruction format
//
// Each instruction is 32 bits wide, little-endian in memory, decoded
// against one of the six RISC-V base encodings:
//
//	R: <funct7:7><rs2:5><rs1:5><funct3:3><rd:5><opcode:7>
//	I: <imm[11:0]:12><rs1:5><funct3:3><rd:5><opcode:7>
//	S: <imm[11:5]:7><rs2:5><rs1:5><funct3:3><imm[4:0]:5><opcode:7>
//	B: <imm[12|10:5]:7><rs2:5><rs1:5><funct3:3><imm[4:1|11]:5><opcode:7>
//	U: <imm[31:12]:20><rd:5><opcode:7>
//	J: <imm[20|10:1|11|19:12]:20><rd:5><opcode:7>
//
// Pipeline latches
//
// Four latches connect the five stages: IfId, IdEx, ExMem, MemWb. Each is
// a pointer that is nil when empty. A stage reads the latch written by
// the stage ahead of it as it stood at the end of the previous cycle,
// then writes its own output latch; Step executes the stages in reverse
// pipeline order (WB, MEM, EX, ID, IF) so this holds without any
// double-buffering.
package vm

// Format tags which operand format variant is populated in an Operands
// value. Go has no sum types, so each pipeline latch carries an Operands
// struct with only the fields relevant to its Format populated.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

// Operands is the decoded operand bundle for one in-flight instruction,
// in its native format variant. Source register indices and the values
// read from the register file at decode time are captured together so
// that forwarding (see hazard.go) can overwrite just the value without
// re-reading the register file.
type Operands struct {
	Format Format

	Rd, R1, R2 int // register indices; zero value when not applicable to Format
	R1Val      int32
	R2Val      int32
	Imm        int32
}

// MemoryWidth is the width of a load or store memory access.
type MemoryWidth int

const (
	WidthByte MemoryWidth = iota
	WidthByteUnsigned
	WidthHalf
	WidthHalfUnsigned
	WidthWord
)

// MemoryOp describes the memory access, if any, an instruction performs
// in the MEM stage.
type MemoryOp struct {
	IsLoad bool
	Width  MemoryWidth
}

// IfId is the IF/ID latch: the raw fetched word and its fetch address.
type IfId struct {
	Instruction uint32
	Address     uint32
}

// IdEx is the ID/EX latch: the decoded operand bundle, the instruction's
// own address (needed by branches/jumps/AUIPC), an optional memory
// operation descriptor, and the executor closure selected for it at
// decode time by the matching catalog entry.
type IdEx struct {
	Operands *Operands
	MemOp    *MemoryOp
	Address  uint32
	Execute  func(*IdEx) ExecuteResult
}

// ExecuteResult is what an executor hands back to the EX stage.
type ExecuteResult struct {
	ExMem ExMem
	Flush bool
	NewPC *uint32
}

// ExMem is the EX/MEM latch: the optional destination register, the ALU
// result or effective address, and the preserved operand bundle and
// memory descriptor so MEM can recover the store value and access width.
type ExMem struct {
	Rd                *int
	CalculationResult int32
	Operands          *Operands
	MemOp             *MemoryOp
}

// MemWb is the MEM/WB latch: the destination register and write value.
type MemWb struct {
	Rd    int
	Value int32
}

// Definition is one catalog entry: a recognition predicate plus the
// decoder and executor for the instruction it recognizes. Decoders and
// executors are attached as closures (rather than dispatched through a
// central opcode switch in EX) so recognition, decode and execute for one
// opcode stay lexically adjacent; the catalog itself remains a single
// flat, append-only table.
type Definition struct {
	Mask     uint32
	MatchVal uint32
	Decode   func(instruction uint32, registers *[32]int32, address uint32) *IdEx
}

// Matches reports whether instruction is recognized by this definition.
func (d Definition) Matches(instruction uint32) bool {
	return instruction&d.Mask == d.MatchVal
}
