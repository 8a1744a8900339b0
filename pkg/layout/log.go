package layout

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// LogEntry is one search result appended to the log file.
type LogEntry struct {
	Time             time.Time
	RunID            string
	Best             float64
	LowestInfeasible float64
	LowestUnknown    float64
	Confidence       string
	Cutoff           int64
	Layout           *Layout
}

// AppendLog appends e to the file at path, creating it if needed.
func AppendLog(path string, e LogEntry) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "=== %s run %s\n", e.Time.Format(time.RFC3339), e.RunID)
	fmt.Fprintf(&buf, "With cutoff %d\n", e.Cutoff)
	fmt.Fprintf(&buf, "Sat: %g, Unknown: %g, Unsat: %g (%s)\n", e.Best, e.LowestUnknown, e.LowestInfeasible, e.Confidence)
	if e.Layout != nil {
		fmt.Fprintf(&buf, "Throughput: %.6f\n", e.Layout.Throughput)
		buf.WriteString(e.Layout.Summary() + "\n")
		if err := Render(&buf, e.Layout); err != nil {
			return err
		}
	}
	buf.WriteString("\n")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return errors.Wrap(err, "writing log file")
	}
	return errors.Wrap(f.Close(), "closing log file")
}
