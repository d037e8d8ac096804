package main

import (
	"os"
	"path/filepath"

	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/strdist.mod/v2/strdist"
)

// maxAltNames is the most alternative file names that will be suggested
const maxAltNames = 3

// SuggestAlternatives searches the population for the closest matches to the
// passed string and if any are found it returns a string suggesting the
// alternative values.
func SuggestAlternatives(n int, s string, pop []string) string {
	finder := strdist.DefaultFinders[strdist.CaseBlindAlgoNameCosine]

	alts := finder.FindNStrLike(n, s, pop...)
	if len(alts) == 0 {
		return ""
	}

	return `, did you mean ` + english.JoinQuoted(alts, ", ", " or ", `"`, `"`)
}

// suggestFileNames returns a string suggesting files in the same directory
// as fileName whose names are close to it. It returns the empty string if
// there are none or the directory cannot be read.
func suggestFileNames(fileName string) string {
	dir, base := filepath.Split(fileName)

	entries, err := os.ReadDir(filepath.Clean(dir + "."))
	if err != nil {
		return ""
	}

	pop := []string{}

	for _, e := range entries {
		if e.Type().IsRegular() {
			pop = append(pop, e.Name())
		}
	}

	alts := SuggestAlternatives(maxAltNames, base, pop)
	if alts == "" {
		return ""
	}

	return alts + " (in " + filepath.Clean(dir+".") + ")"
}
