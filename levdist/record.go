package levdist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nickwells/english.mod/english"
)

// ErrTooFewFields is returned (wrapped) when an input line does not hold
// both a sequence and a label.
var ErrTooFewFields = errors.New("too few fields")

// minFields is the number of whitespace-separated fields that a line must
// have: the sequence and the label
const minFields = 2

// MaxLineLen is the longest line, in bytes, that ReadRecords will accept
const MaxLineLen = 1024 * 1024

// Record holds a labelled sequence as read from one line of the input
type Record struct {
	Seq   string
	Label string
}

// ParseRecord splits the line into whitespace-separated fields and returns
// a Record made from the first two. The first field is the sequence and the
// second is the label; any further fields are ignored.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return Record{},
			fmt.Errorf("%w: expected at least %d, found %d",
				ErrTooFewFields, minFields, len(fields))
	}

	return Record{Seq: fields[0], Label: fields[1]}, nil
}

// readCfg holds the settings for ReadRecords
type readCfg struct {
	skipBlankLines bool
}

// ReadOpt is the type of a function which can be passed to ReadRecords to
// change its behaviour
type ReadOpt func(*readCfg)

// SkipBlankLines returns a ReadOpt which, if skip is true, makes
// ReadRecords ignore lines that have no fields. Otherwise such lines are
// reported as errors.
func SkipBlankLines(skip bool) ReadOpt {
	return func(rc *readCfg) {
		rc.skipBlankLines = skip
	}
}

// ReadRecords reads the whole of r, parsing each line into a Record. The
// records are returned in the order they were read. Any line which cannot
// be parsed stops the read and the error is returned.
func ReadRecords(r io.Reader, opts ...ReadOpt) ([]Record, error) {
	cfg := readCfg{}
	for _, o := range opts {
		o(&cfg)
	}

	recs := []Record{}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLen)

	lineNum := 0
	for s.Scan() {
		lineNum++

		line := s.Text()
		if cfg.skipBlankLines && strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("the %d%s line: %w",
				lineNum, english.OrdinalSuffix(lineNum), err)
		}

		recs = append(recs, rec)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading after the %d%s line: %w",
			lineNum, english.OrdinalSuffix(lineNum), err)
	}

	return recs, nil
}
