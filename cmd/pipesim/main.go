// Command pipesim loads a flat RV32I byte image and drives the five-
// stage pipeline to completion: no assembler invocation, no debugger,
// no interactive protocol, just enough of a harness to exercise the
// library from the command line.
package main

import (
	"flag"
	"log"
	"os"

	"rv32pipe/pkg/vm"
)

func main() {
	log.SetFlags(0)
	imagePath := flag.String("image", "", "path to a flat binary RV32I image")
	trace := flag.Bool("trace", false, "print latch state every cycle")
	interlock := flag.Bool("interlock", false, "use the Interlock hazard strategy instead of Bypassing")
	noPipeline := flag.Bool("no-pipeline", false, "drive the machine with StepNoPipeline instead of Run")
	maxCycles := flag.Uint64("max-cycles", 1_000_000, "safety bound on pipelined cycles for a program that never drains")
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("usage: pipesim -image <path> [-trace] [-interlock] [-no-pipeline]")
	}

	image, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatal(err)
	}

	strategy := vm.Bypassing
	if *interlock {
		strategy = vm.Interlock
	}
	machine := vm.New(image, strategy)

	if *noPipeline {
		for uint64(machine.PC)+4 <= uint64(len(machine.Memory)) {
			machine.StepNoPipeline()
			if *trace {
				log.Printf("cycle=%d pc=%#x x1..x4=%v", machine.Cycle, machine.PC, machine.Registers[1:5])
			}
		}
		return
	}

	for machine.Cycle < *maxCycles {
		machine.Step()
		if *trace {
			log.Printf("cycle=%d pc=%#x if/id=%v id/ex=%v ex/mem=%v mem/wb=%v",
				machine.Cycle, machine.PC, machine.IfId != nil, machine.IdEx != nil,
				machine.ExMem != nil, machine.MemWb != nil)
		}
		if machine.IfId == nil && machine.IdEx == nil && machine.ExMem == nil && machine.MemWb == nil {
			break
		}
	}
	log.Printf("drained after %d cycles, pc=%#x", machine.Cycle, machine.PC)
}
