// Command foldcli is a demo driver: it loads an interaction table, builds
// a Protein and its compressed Hamiltonian, and — given a bitstring on the
// command line — decodes it. It does not run any VQE ansatz or optimiser;
// that is left to an external sampler wired through package solver.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"latticefold/config"
	"latticefold/contact"
	"latticefold/distance"
	"latticefold/hamiltonian"
	"latticefold/interaction"
	"latticefold/internal/flog"
	"latticefold/protein"

	"latticefold/decode"
)

func main() {
	main_ := flag.String("main", "", "main chain sequence (required)")
	side := flag.String("side", "", "side chain sequence, '_' for no side bead (default: all placeholders)")
	tablePath := flag.String("table", "", "interaction table file path (required)")
	sparse := flag.Bool("sparse", false, "use the sparse (4 qubits/turn) turn encoding instead of dense (2)")
	hp := flag.Bool("hp", false, "use the HP interaction model instead of MJ")
	bitstring := flag.String("bitstring", "", "measurement bitstring to decode (optional)")
	flag.Parse()

	if *main_ == "" || *tablePath == "" {
		fmt.Fprintln(os.Stderr, "usage: foldcli -main <seq> -table <path> [-side <seq>] [-sparse] [-hp] [-bitstring <bits>]")
		os.Exit(1)
	}

	sideSeq := *side
	if sideSeq == "" {
		sideSeq = blankSideChain(len(*main_))
	}

	kind := interaction.MJ
	if *hp {
		kind = interaction.HP
	}
	qubitsPerTurn := 2
	if *sparse {
		qubitsPerTurn = 4
	}

	f, err := os.Open(*tablePath)
	if err != nil {
		log.Fatalf("open interaction table: %v", err)
	}
	defer f.Close()

	table, err := interaction.NewInteraction(kind, f)
	if err != nil {
		log.Fatalf("load interaction table: %v", err)
	}

	penalties := config.DefaultPenalties()
	flog.Debugf("penalties: %+v", penalties)

	p, err := protein.NewProtein(*main_, sideSeq, qubitsPerTurn, table)
	if err != nil {
		log.Fatalf("build protein: %v", err)
	}

	dm, err := distance.Build(p)
	if err != nil {
		log.Fatalf("build distance map: %v", err)
	}
	cm, err := contact.Build(p)
	if err != nil {
		log.Fatalf("build contact map: %v", err)
	}
	h, err := hamiltonian.Build(p, table, dm, cm)
	if err != nil {
		log.Fatalf("build hamiltonian: %v", err)
	}
	h = h.RemoveUnusedQubits()

	fmt.Printf("protein: N=%d qubits_per_turn=%d\n", p.Len(), qubitsPerTurn)
	fmt.Printf("hamiltonian: qubits=%d terms=%d\n", h.N(), h.NumTerms())

	if *bitstring == "" {
		return
	}
	result, err := decode.Decode(p, qubitsPerTurn, *bitstring)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Printf("turns: %v\n", result.Turns)
	for _, c := range result.Coordinates {
		fmt.Printf("  bead %d (%c): (%.4f, %.4f, %.4f)\n", c.Index, c.Symbol, c.X, c.Y, c.Z)
	}
	for _, ct := range result.Contacts {
		fmt.Printf("  contact: %d <-> %d\n", ct.I, ct.J)
	}
}

func blankSideChain(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '_'
	}
	return string(b)
}
