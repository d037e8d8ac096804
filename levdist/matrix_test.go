package levdist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nickwells/levmatrix/levdist"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

// failingWriter is an io.Writer which always fails
type failingWriter struct{}

var errWrite = errors.New("write failed")

// Write returns an error
func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

// mkRecs converts the lines into Records, failing the test on error
func mkRecs(t *testing.T, lines ...string) []levdist.Record {
	t.Helper()

	recs := make([]levdist.Record, 0, len(lines))

	for _, l := range lines {
		r, err := levdist.ParseRecord(l)
		if err != nil {
			t.Fatalf("bad test record %q: %s", l, err)
		}

		recs = append(recs, r)
	}

	return recs
}

func TestMatrixWriter(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		recs      []levdist.Record
		opts      []levdist.MatrixWriterOpt
		expOut    string
		expRows   int
		expPairs  int
		expMinMax [2]float64
	}{
		{
			ID:   testhelper.MkID("three records"),
			recs: mkRecs(t, "ACGT label1", "ACGA label2", "TTTT label3"),
			expOut: "label1,0\n" +
				"label2,0.2500,0\n" +
				"label3,0.7500,1.0000,0\n",
			expRows:   3,
			expPairs:  3,
			expMinMax: [2]float64{0.25, 1},
		},
		{
			ID:     testhelper.MkID("no records"),
			expOut: "",
		},
		{
			ID:      testhelper.MkID("one record"),
			recs:    mkRecs(t, "ACGT only"),
			expOut:  "only,0\n",
			expRows: 1,
		},
		{
			ID:   testhelper.MkID("precision 2"),
			recs: mkRecs(t, "abc a", "abd b", "xyz c"),
			opts: []levdist.MatrixWriterOpt{levdist.Precision(2)},
			expOut: "a,0\n" +
				"b,0.33,0\n" +
				"c,1.00,1.00,0\n",
			expRows:   3,
			expPairs:  3,
			expMinMax: [2]float64{1.0 / 3.0, 1},
		},
		{
			ID:   testhelper.MkID("precision 0"),
			recs: mkRecs(t, "abcd a", "abce b"),
			opts: []levdist.MatrixWriterOpt{levdist.Precision(0)},
			expOut: "a,0\n" +
				"b,0,0\n",
			expRows:   2,
			expPairs:  1,
			expMinMax: [2]float64{0.25, 0.25},
		},
		{
			ID: testhelper.MkID("empty sequences, zero policy"),
			recs: []levdist.Record{
				{Label: "e1"},
				{Label: "e2"},
				{Seq: "AC", Label: "s"},
			},
			expOut: "e1,0\n" +
				"e2,0.0000,0\n" +
				"s,1.0000,1.0000,0\n",
			expRows:   3,
			expPairs:  3,
			expMinMax: [2]float64{0, 1},
		},
		{
			ID:     testhelper.MkID("empty sequences, error policy"),
			ExpErr: testhelper.MkExpErr(`comparing "e2" with "e1"`, "empty"),
			recs: []levdist.Record{
				{Seq: "AC", Label: "s"},
				{Label: "e1"},
				{Label: "e2"},
			},
			opts: []levdist.MatrixWriterOpt{
				levdist.Policy(levdist.BothEmptyError),
			},
			expOut: "s,0\n" +
				"e1,1.0000,0\n",
			expRows:   2,
			expPairs:  2,
			expMinMax: [2]float64{1, 1},
		},
	}

	for _, tc := range testCases {
		mw, err := levdist.NewMatrixWriter(tc.opts...)
		if err != nil {
			t.Fatal(tc.IDStr(), ": cannot make the MatrixWriter:", err)
		}

		var sb strings.Builder

		stats, err := mw.Write(&sb, tc.recs)
		testhelper.CheckExpErr(t, err, tc)
		testhelper.DiffString(t, tc.IDStr(), "output", sb.String(), tc.expOut)
		testhelper.DiffInt(t, tc.IDStr(), "rows", stats.Rows, tc.expRows)
		testhelper.DiffInt(t, tc.IDStr(), "pairs", stats.Pairs, tc.expPairs)
		testhelper.DiffFloat(t, tc.IDStr(), "min",
			stats.Min, tc.expMinMax[0], epsilon)
		testhelper.DiffFloat(t, tc.IDStr(), "max",
			stats.Max, tc.expMinMax[1], epsilon)
	}
}

func TestMatrixShape(t *testing.T) {
	recs := make([]levdist.Record, 0, len(population))
	for i, s := range population {
		if s == "" {
			continue
		}

		recs = append(recs,
			levdist.Record{Seq: s, Label: "r" + string(rune('a'+i))})
	}

	mw, err := levdist.NewMatrixWriter()
	if err != nil {
		t.Fatal("cannot make the MatrixWriter:", err)
	}

	var sb strings.Builder

	if _, err = mw.Write(&sb, recs); err != nil {
		t.Fatal("unexpected error:", err)
	}

	rows := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	testhelper.DiffInt(t, "shape", "row count", len(rows), len(recs))

	for i, row := range rows {
		fields := strings.Split(row, ",")
		testhelper.DiffString(t, "shape", "label", fields[0], recs[i].Label)
		testhelper.DiffInt(t, "shape", "distance fields",
			len(fields)-1, i+1)
		testhelper.DiffString(t, "shape", "diagonal",
			fields[len(fields)-1], "0")
	}
}

func TestMatrixWriterWriteError(t *testing.T) {
	mw, err := levdist.NewMatrixWriter()
	if err != nil {
		t.Fatal("cannot make the MatrixWriter:", err)
	}

	_, err = mw.Write(failingWriter{}, mkRecs(t, "ACGT a", "ACGA b"))
	if !errors.Is(err, errWrite) {
		t.Errorf("expected the write error, got: %v", err)
	}
}

func TestNewMatrixWriter(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		opts []levdist.MatrixWriterOpt
	}{
		{ID: testhelper.MkID("defaults")},
		{
			ID: testhelper.MkID("good opts"),
			opts: []levdist.MatrixWriterOpt{
				levdist.Precision(6),
				levdist.Policy(levdist.BothEmptyError),
			},
		},
		{
			ID:     testhelper.MkID("negative precision"),
			ExpErr: testhelper.MkExpErr("must not be negative"),
			opts:   []levdist.MatrixWriterOpt{levdist.Precision(-1)},
		},
		{
			ID:     testhelper.MkID("bad policy"),
			ExpErr: testhelper.MkExpErr("unknown both-empty policy"),
			opts: []levdist.MatrixWriterOpt{
				levdist.Policy(levdist.BothEmptyPolicy("maybe")),
			},
		},
	}

	for _, tc := range testCases {
		_, err := levdist.NewMatrixWriter(tc.opts...)
		testhelper.CheckExpErr(t, err, tc)
	}
}

func TestStatsMean(t *testing.T) {
	testhelper.DiffFloat(t, "no pairs", "mean",
		levdist.Stats{}.Mean(), 0, epsilon)
	testhelper.DiffFloat(t, "two pairs", "mean",
		levdist.Stats{Pairs: 2, Sum: 1.5}.Mean(), 0.75, epsilon)
}
