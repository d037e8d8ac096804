package main

// levmatrix

import (
	"os"
)

// Created: Mon Oct 12 10:14:02 2026

func main() {
	prog := NewProg()
	ps := makeParamSet(prog)
	ps.Parse()

	prog.Run(ps.Remainder())
	os.Exit(prog.exitStatus)
}
