package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *Prog) *param.PSet {
	return paramset.NewOrPanic(
		addParams(prog),
		addNotes(prog),
		verbose.AddParams,
		versionparams.AddParams,
		param.SetProgramDescription(
			"this will read a file of sequences, one per line, each"+
				" followed by a label. It will calculate the Levenshtein"+
				" distance between every pair of sequences, scaled by"+
				" the length of the longer sequence, and write the"+
				" results as a lower-triangular matrix of comma-separated"+
				" values. The names of the input, output and log files"+
				" can be given either through parameters or, in that"+
				" order, as trailing arguments"),
	)
}
