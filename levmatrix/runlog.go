package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nickwells/levmatrix/levdist"
	"github.com/sirupsen/logrus"
)

const runLogMethod = "Levenshtein Distance"

// runLog holds the details of a run to be recorded in the log file
type runLog struct {
	inFile  string
	outFile string
	start   time.Time
	end     time.Time
	stats   levdist.Stats
}

// write writes the run details to w as a single log entry
func (rl runLog) write(w io.Writer) {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	logger.WithFields(logrus.Fields{
		"method":  runLogMethod,
		"input":   rl.inFile,
		"output":  rl.outFile,
		"start":   rl.start.Format(time.RFC3339),
		"end":     rl.end.Format(time.RFC3339),
		"elapsed": rl.end.Sub(rl.start).Seconds(),
		"records": rl.stats.Rows,
		"pairs":   rl.stats.Pairs,
	}).Info("run complete")
}

// appendRunLog appends the run details to the log file, creating it if
// necessary
func (prog *Prog) appendRunLog(rl runLog) {
	f, err := os.OpenFile(prog.logFile,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:mnd
	if err != nil {
		fmt.Println("Failed to open the log file:", err)
		prog.SetExitStatus(1)

		return
	}

	rl.write(f)

	if err := f.Close(); err != nil {
		fmt.Println("Failed to close the log file:", err)
		prog.SetExitStatus(1)
	}
}
