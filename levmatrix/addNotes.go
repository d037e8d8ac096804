package main

import (
	"strconv"

	"github.com/nickwells/levmatrix/levdist"
	"github.com/nickwells/param.mod/v6/param"
)

const (
	noteBaseName = "levmatrix - "

	noteNameOutput    = noteBaseName + "output format"
	noteNameEmptySeqs = noteBaseName + "empty sequences"
	noteNameInput     = noteBaseName + "input format"
)

// addNotes adds the notes for this program.
func addNotes(_ *Prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddNote(noteNameOutput,
			"Each line of the output starts with the label of the"+
				" corresponding input line. This is followed by the"+
				" scaled distances from that sequence to each of the"+
				" sequences on the earlier lines, in input order, and"+
				" finally a zero for the distance to itself. So the"+
				" first line has one value, the second has two and so"+
				" on. Only the lower triangle of the matrix is written;"+
				" the matrix is symmetric so the upper triangle can be"+
				" reconstructed from it. The scaled distance is the"+
				" Levenshtein distance divided by the length of the"+
				" longer of the two sequences, giving a value between"+
				" zero and one. The number of digits shown after the"+
				" decimal point is set with the '"+paramNamePrecision+
				"' parameter.")

		ps.AddNote(noteNameEmptySeqs,
			"If both of the sequences being compared are empty then"+
				" the scaled distance cannot be calculated as it would"+
				" involve dividing by zero. By default the distance is"+
				" taken to be zero but this can be changed so that the"+
				" program stops with an error; see the '"+
				paramNameBothEmpty+"' parameter.")

		ps.AddNote(noteNameInput,
			"Each line of the input holds a sequence followed by its"+
				" label, separated by white space. The sequences are"+
				" compared character by character; if either of the"+
				" two sequences is not valid UTF-8 they are compared"+
				" byte by byte instead. No line may be longer than "+
				strconv.Itoa(levdist.MaxLineLen)+" bytes; a longer"+
				" line is reported as an error and the program stops.")

		return nil
	}
}
