package main

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/nickwells/levmatrix/levdist"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramNameInFile         = "in-file"
	paramNameOutFile        = "out-file"
	paramNameLogFile        = "log-file"
	paramNamePrecision      = "precision"
	paramNameBothEmpty      = "both-empty"
	paramNameSkipBlankLines = "skip-blank-lines"
	paramNameShowSummary    = "show-summary"
)

// maxPrecision is the largest number of decimal places that can be asked
// for. Beyond this a float64 has no more digits to give.
const maxPrecision = 15

func addParams(prog *Prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameInFile,
			psetter.Pathname{
				Value:       &prog.inFile,
				Expectation: filecheck.FileExists(),
			},
			"the name of the file containing the sequences to be"+
				" compared. Each line should hold a sequence followed"+
				" by its label, separated by white space. Any further"+
				" fields on the line are ignored."+
				" This can also be given as the first trailing argument",
		)

		ps.Add(paramNameOutFile,
			psetter.Pathname{
				Value: &prog.outFile,
			},
			"the name of the file to which the distance matrix will be"+
				" written. Any existing file will be overwritten."+
				" This can also be given as the second trailing argument",
		)

		ps.Add(paramNameLogFile,
			psetter.Pathname{
				Value: &prog.logFile,
			},
			"the name of a file to which a record of the run will be"+
				" appended. The record gives the input and output files,"+
				" the start and end times and the time taken."+
				" This can also be given as the third trailing argument",
		)

		ps.Add(paramNamePrecision,
			psetter.Int[int]{
				Value: &prog.precision,
				Checks: []check.ValCk[int]{
					check.ValGE(0),
					check.ValLE(maxPrecision),
				},
			},
			"the number of digits to show after the decimal point for"+
				" each of the distances",
		)

		ps.Add(paramNameBothEmpty,
			psetter.Enum[levdist.BothEmptyPolicy]{
				Value: &prog.bothEmpty,
				AllowedVals: psetter.AllowedVals[levdist.BothEmptyPolicy]{
					levdist.BothEmptyZero: "the distance between two" +
						" empty sequences is taken to be zero",
					levdist.BothEmptyError: "comparing two empty" +
						" sequences is an error and the program stops",
				},
			},
			"what to do when both of the sequences being compared are"+
				" empty",
		)

		ps.Add(paramNameSkipBlankLines,
			psetter.Bool{
				Value: &prog.skipBlankLines,
			},
			"ignore any blank lines in the input file rather than"+
				" reporting them as errors",
		)

		ps.Add(paramNameShowSummary,
			psetter.Bool{
				Value: &prog.showSummary,
			},
			"print a summary of the distances calculated",
		)

		_ = ps.SetNamedRemHandler(param.NullRemHandler{},
			"in-file out-file [log-file]")

		return nil
	}
}
