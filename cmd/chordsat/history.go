package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/chordsat/chordsat/pkg/config"
	"github.com/chordsat/chordsat/pkg/history"
)

func newHistoryCmd() *cobra.Command {
	var db string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded searches",
	}
	cmd.PersistentFlags().StringVar(&db, "history-db", config.Default().HistoryDB, "sqlite database recording every run")

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := history.Open(db)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeRuns(cmd.OutOrStdout(), runs)
		},
	}
	list.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of runs, 0 for all")

	show := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a run with its queries and chords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := history.Open(db)
			if err != nil {
				return err
			}
			defer s.Close()

			d, err := s.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeDetail(cmd.OutOrStdout(), d)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func bound(f float64) string {
	if math.IsInf(f, 1) {
		return "-"
	}
	return fmt.Sprintf("%g", f)
}

func writeRuns(w io.Writer, runs []history.Run) error {
	header := []string{"ID", "STARTED", "STATUS", "BEST", "UNSAT", "UNKNOWN", "CONFIDENCE", "CONFIG"}
	rows := [][]string{header}
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			humanize.Time(r.Started),
			string(r.Status),
			fmt.Sprintf("%g", r.Best),
			bound(r.LowestInfeasible),
			bound(r.LowestUnknown),
			r.Confidence,
			r.ConfigHash,
		})
	}
	return writeTable(w, rows)
}

// writeTable left-aligns each column to its widest cell.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for _, row := range rows {
		line := ""
		for i, cell := range row {
			if i == len(row)-1 {
				line += cell
				break
			}
			line += runewidth.FillRight(cell, widths[i]) + "  "
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(w io.Writer, d *history.Detail) error {
	fmt.Fprintf(w, "Run:        %s\n", d.ID)
	fmt.Fprintf(w, "Started:    %s\n", d.Started.Format("2006-01-02 15:04:05"))
	if !d.Finished.IsZero() {
		fmt.Fprintf(w, "Finished:   %s (%s)\n", d.Finished.Format("2006-01-02 15:04:05"), d.Finished.Sub(d.Started).Round(time.Millisecond))
	}
	fmt.Fprintf(w, "Status:     %s\n", d.Status)
	if d.Error != "" {
		fmt.Fprintf(w, "Error:      %s\n", d.Error)
	}
	fmt.Fprintf(w, "Sat: %g, Unknown: %s, Unsat: %s (%s)\n", d.Best, bound(d.LowestUnknown), bound(d.LowestInfeasible), d.Confidence)
	if d.Throughput > 0 {
		fmt.Fprintf(w, "Throughput: %.6f\n", d.Throughput)
	}
	fmt.Fprintf(w, "Parameters: %s\n", d.Parameters)

	if len(d.Queries) > 0 {
		fmt.Fprintln(w)
		rows := [][]string{{"#", "GUESS", "RESULT", "ELAPSED", "DEPTH"}}
		for _, q := range d.Queries {
			rows = append(rows, []string{
				fmt.Sprint(q.Number),
				fmt.Sprintf("%g", q.Guess),
				q.Result,
				q.Elapsed.String(),
				fmt.Sprint(q.Depth),
			})
		}
		if err := writeTable(w, rows); err != nil {
			return err
		}
	}

	if len(d.Assignments) > 0 {
		fmt.Fprintln(w)
		rows := [][]string{{"GRAM", "CHORD", "COST"}}
		for _, a := range d.Assignments {
			rows = append(rows, []string{a.Gram, a.Chord.String(), a.Cost})
		}
		return writeTable(w, rows)
	}
	return nil
}
