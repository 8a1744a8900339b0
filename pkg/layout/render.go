package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chordsat/chordsat/pkg/chord"
)

const cellWidth = 4

// board lists the chords shown on the diagram, row by row. Even rows
// are the single buttons of one finger, in brackets, with the adjacent
// double presses between them. Odd rows combine the same columns of two
// neighbouring fingers.
var board = [7][5]chord.Chord{
	{2048, 3072, 1024, 1536, 512},
	{2304, 3456, 1152, 1728, 576},
	{256, 384, 128, 192, 64},
	{288, 432, 144, 216, 72},
	{32, 48, 16, 24, 8},
	{36, 54, 18, 27, 9},
	{4, 6, 2, 3, 1},
}

const border = "|--------------------------------|"
const spacer = "|                                |"

// Render draws the board with the gram typed by each chord.
func Render(w io.Writer, l *Layout) error {
	var sb strings.Builder
	sb.WriteString(border + "\n")
	for r, row := range board {
		if r > 0 {
			sb.WriteString(spacer + "\n")
		}
		cells := make([]string, len(row))
		for k, ch := range row {
			text, _ := l.Gram(ch)
			cells[k] = runewidth.FillRight(text, cellWidth)
		}
		if r%2 == 0 {
			fmt.Fprintf(&sb, "| [%s] %s [%s] %s [%s] |\n", cells[0], cells[1], cells[2], cells[3], cells[4])
		} else {
			fmt.Fprintf(&sb, "|  %s  %s  %s  %s  %s  |\n", cells[0], cells[1], cells[2], cells[3], cells[4])
		}
	}
	sb.WriteString(border + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// List writes one line per chorded gram, in corpus order.
func List(w io.Writer, l *Layout) error {
	width := 0
	for _, g := range l.Corpus.Grams {
		if n := runewidth.StringWidth(g.Text); n > width {
			width = n
		}
	}
	for i, ch := range l.Chords {
		if ch == chord.Null {
			continue
		}
		c, _ := l.Costs[i].Float64()
		if _, err := fmt.Fprintf(w, "%s  %s  %.4f\n", runewidth.FillRight(l.Corpus.Grams[i].Text, width), ch, c); err != nil {
			return err
		}
	}
	return nil
}
