package levdist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DfltPrecision is the default number of digits written after the decimal
// point for each distance
const DfltPrecision = 4

const (
	fieldSep = ","
	diagonal = "0"
)

// Stats records what was done while writing a matrix. The Min, Max and Sum
// values cover only the off-diagonal distances that were calculated.
type Stats struct {
	Rows  int
	Pairs int
	Min   float64
	Max   float64
	Sum   float64
}

// Mean returns the mean of the calculated distances. It returns 0 if no
// distances were calculated.
func (s Stats) Mean() float64 {
	if s.Pairs == 0 {
		return 0
	}

	return s.Sum / float64(s.Pairs)
}

// add records the distance in the Stats
func (s *Stats) add(d float64) {
	if s.Pairs == 0 || d < s.Min {
		s.Min = d
	}

	if s.Pairs == 0 || d > s.Max {
		s.Max = d
	}

	s.Sum += d
	s.Pairs++
}

// MatrixWriter writes the lower triangle of the normalized distance matrix
type MatrixWriter struct {
	precision int
	policy    BothEmptyPolicy
}

// MatrixWriterOpt is the type of a function which can be passed to
// NewMatrixWriter to change the MatrixWriter
type MatrixWriterOpt func(*MatrixWriter) error

// Precision returns a MatrixWriterOpt setting the number of digits written
// after the decimal point
func Precision(p int) MatrixWriterOpt {
	return func(mw *MatrixWriter) error {
		if p < 0 {
			return fmt.Errorf("the precision (%d) must not be negative", p)
		}

		mw.precision = p

		return nil
	}
}

// Policy returns a MatrixWriterOpt setting the policy to follow when both
// sequences are empty
func Policy(p BothEmptyPolicy) MatrixWriterOpt {
	return func(mw *MatrixWriter) error {
		switch p {
		case BothEmptyZero, BothEmptyError:
		default:
			return fmt.Errorf("unknown both-empty policy: %q", p)
		}

		mw.policy = p

		return nil
	}
}

// NewMatrixWriter returns a MatrixWriter with the default settings changed
// by the opts. An error is returned if any of the opts fail.
func NewMatrixWriter(opts ...MatrixWriterOpt) (*MatrixWriter, error) {
	mw := &MatrixWriter{
		precision: DfltPrecision,
		policy:    BothEmptyZero,
	}

	for _, o := range opts {
		if err := o(mw); err != nil {
			return nil, err
		}
	}

	return mw, nil
}

// Write writes one row to w for each of the records, in order. Row i holds
// the label of record i followed by the distances from record i to each
// of the records before it and then a zero for the distance to itself. Only
// the lower triangle of the matrix is written.
//
// Each row is written as soon as it has been calculated; the matrix is not
// held in memory. The first error stops the writing and is returned along
// with the Stats collected so far.
func (mw *MatrixWriter) Write(w io.Writer, recs []Record) (Stats, error) {
	var stats Stats

	bw := bufio.NewWriter(w)

	for i, ri := range recs {
		if err := mw.writeRow(bw, recs[:i], ri, &stats); err != nil {
			_ = bw.Flush()
			return stats, err
		}

		stats.Rows++
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("cannot write the matrix: %w", err)
	}

	return stats, nil
}

// writeRow writes the row for the record r, which comes after the records
// in prior
func (mw *MatrixWriter) writeRow(
	bw *bufio.Writer,
	prior []Record,
	r Record,
	stats *Stats,
) error {
	buf := make([]byte, 0, len(r.Label)+len(prior)*(mw.precision+3)+2)

	buf = append(buf, r.Label...)
	buf = append(buf, fieldSep...)

	for _, p := range prior {
		d, err := Normalized(r.Seq, p.Seq, mw.policy)
		if err != nil {
			return fmt.Errorf("comparing %q with %q: %w", r.Label, p.Label, err)
		}

		stats.add(d)

		buf = strconv.AppendFloat(buf, d, 'f', mw.precision, 64)
		buf = append(buf, fieldSep...)
	}

	buf = append(buf, diagonal...)
	buf = append(buf, '\n')

	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("cannot write the row for %q: %w", r.Label, err)
	}

	return nil
}
