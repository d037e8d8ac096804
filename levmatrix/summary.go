package main

import (
	"fmt"
	"io"

	"github.com/nickwells/col.mod/v6/col"
	"github.com/nickwells/col.mod/v6/colfmt"
	"github.com/nickwells/levmatrix/levdist"
)

// printSummary prints a one-line report on the distances calculated
//
//nolint:mnd
func (prog *Prog) printSummary(w io.Writer, stats levdist.Stats) {
	h, err := col.NewHeader()
	if err != nil {
		fmt.Printf("Couldn't make the summary header: %s\n", err)
		prog.SetExitStatus(1)

		return
	}

	distCol := func(name string) *col.Col {
		return col.New(
			&colfmt.Float{
				W:    8,
				Prec: 4,
			},
			"distance", name)
	}

	rpt, err := col.NewReport(h, w,
		col.New(&colfmt.Int{W: 7, HandleZeroes: true}, "", "records"),
		col.New(&colfmt.Int{W: 9, HandleZeroes: true}, "", "pairs"),
		distCol("min"),
		distCol("mean"),
		distCol("max"),
	)
	if err != nil {
		fmt.Println("Couldn't create the summary report:", err)
		prog.SetExitStatus(1)

		return
	}

	err = rpt.PrintRow(stats.Rows, stats.Pairs,
		stats.Min, stats.Mean(), stats.Max)
	if err != nil {
		fmt.Printf("Cannot print the summary report: %s\n", err)
		prog.SetExitStatus(1)
	}
}
