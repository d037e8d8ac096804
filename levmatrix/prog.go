package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/nickwells/levmatrix/levdist"
	"github.com/nickwells/verbose.mod/verbose"
)

// maxPositionalArgs is the number of trailing arguments that can be given:
// the input, output and log file names
const maxPositionalArgs = 3

// Prog holds program parameters and status
type Prog struct {
	exitStatus int

	inFile  string
	outFile string
	logFile string

	precision      int
	bothEmpty      levdist.BothEmptyPolicy
	skipBlankLines bool
	showSummary    bool
}

// NewProg returns a new Prog instance with the default values set
func NewProg() *Prog {
	return &Prog{
		precision: levdist.DfltPrecision,
		bothEmpty: levdist.BothEmptyZero,
	}
}

// SetExitStatus sets the exit status to the new value. It will not do this
// if the exit status has already been set to a non-zero value.
func (prog *Prog) SetExitStatus(es int) {
	if prog.exitStatus == 0 {
		prog.exitStatus = es
	}
}

// Run is the starting point for the program, it should be called from main()
// after the command-line parameters have been parsed. Use the setExitStatus
// method to record the exit status and then main can exit with that status.
func (prog *Prog) Run(args []string) {
	if !prog.setFileNames(args) {
		return
	}

	start := time.Now()

	recs := prog.getRecords()
	if recs == nil {
		return
	}

	stats, ok := prog.writeMatrix(recs)
	if !ok {
		return
	}

	end := time.Now()

	verbose.Printf("%d rows written to %q, %d distances calculated in %s\n",
		stats.Rows, prog.outFile, stats.Pairs, end.Sub(start))

	if prog.logFile != "" {
		prog.appendRunLog(runLog{
			inFile:  prog.inFile,
			outFile: prog.outFile,
			start:   start,
			end:     end,
			stats:   stats,
		})
	}

	if prog.showSummary {
		prog.printSummary(os.Stdout, stats)
	}
}

// setFileNames uses the trailing arguments to set any of the file names
// which have not been given by parameter. It returns false if there are too
// many arguments or if the input or output file names are missing.
func (prog *Prog) setFileNames(args []string) bool {
	if len(args) > maxPositionalArgs {
		fmt.Printf("Too many arguments: %d given, at most %d allowed\n",
			len(args), maxPositionalArgs)
		prog.SetExitStatus(1)

		return false
	}

	names := []*string{&prog.inFile, &prog.outFile, &prog.logFile}
	for i, a := range args {
		if *names[i] != "" {
			fmt.Printf("The file name %q is given both as an argument"+
				" and by parameter (%q)\n", a, *names[i])
			prog.SetExitStatus(1)

			return false
		}

		*names[i] = a
	}

	if prog.inFile == "" {
		fmt.Printf("The input file must be given (see %q)\n", paramNameInFile)
		prog.SetExitStatus(1)

		return false
	}

	if prog.outFile == "" {
		fmt.Printf("The output file must be given (see %q)\n",
			paramNameOutFile)
		prog.SetExitStatus(1)

		return false
	}

	return true
}

// getRecords returns the records read from the input file. It returns nil
// on any error.
func (prog *Prog) getRecords() []levdist.Record {
	r, err := os.Open(prog.inFile)
	if err != nil {
		alts := ""
		if errors.Is(err, fs.ErrNotExist) {
			alts = suggestFileNames(prog.inFile)
		}

		fmt.Printf("Failed to open the file of sequences: %s%s\n", err, alts)
		prog.SetExitStatus(1)

		return nil
	}
	defer r.Close()

	recs, err := levdist.ReadRecords(r,
		levdist.SkipBlankLines(prog.skipBlankLines))
	if err != nil {
		fmt.Printf("Reading the file of sequences (%q): %s\n",
			prog.inFile, err)
		prog.SetExitStatus(1)

		return nil
	}

	verbose.Printf("the sequence file (%q) holds %d entries\n",
		prog.inFile, len(recs))

	return recs
}

// writeMatrix creates the output file and writes the distance matrix to
// it. It returns false on any error.
func (prog *Prog) writeMatrix(recs []levdist.Record) (levdist.Stats, bool) {
	mw, err := levdist.NewMatrixWriter(
		levdist.Precision(prog.precision),
		levdist.Policy(prog.bothEmpty))
	if err != nil {
		fmt.Println("Couldn't make the matrix writer:", err)
		prog.SetExitStatus(1)

		return levdist.Stats{}, false
	}

	w, err := os.Create(prog.outFile)
	if err != nil {
		fmt.Println("Failed to create the output file:", err)
		prog.SetExitStatus(1)

		return levdist.Stats{}, false
	}

	stats, err := mw.Write(w, recs)
	if err != nil {
		fmt.Printf("Writing the distance matrix (%q): %s\n",
			prog.outFile, err)
		prog.SetExitStatus(1)
	}

	if cerr := w.Close(); cerr != nil && err == nil {
		fmt.Println("Failed to close the output file:", cerr)
		prog.SetExitStatus(1)

		return stats, false
	}

	return stats, err == nil
}
