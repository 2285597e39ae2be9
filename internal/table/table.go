// Package table renders train records as a bordered, fixed-width text table.
package table

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"github.com/InternatManhole/trains/internal/locale"
	"github.com/InternatManhole/trains/internal/train"
)

type align int

const (
	alignColumn align = iota - 1 // use the column's own alignment
	alignLeft
	alignRight
	alignCenter
)

type column struct {
	width int
	align align
}

// Widths are in terminal cells. Values wider than their column are not cut.
var columns = [...]column{
	{width: 4, align: alignRight},   // index
	{width: 30, align: alignLeft},   // departure point
	{width: 13, align: alignLeft},   // train number
	{width: 18, align: alignRight},  // departure time
	{width: 16, align: alignCenter}, // destination
}

type Table struct {
	printer *message.Printer
}

// New returns a Table whose headers and messages are translated by p.
func New(p *message.Printer) *Table {
	return &Table{printer: p}
}

// Render writes records to w, numbering rows from 1 in the order given.
// An empty slice produces only the "list is empty" message.
func (t *Table) Render(w io.Writer, records []train.Record) error {
	var b strings.Builder
	if len(records) == 0 {
		b.WriteString(t.printer.Sprintf(locale.EmptyList))
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	}

	line := border()
	b.WriteString(line)
	b.WriteString(row(alignCenter,
		t.printer.Sprintf(locale.HeaderIndex),
		t.printer.Sprintf(locale.HeaderDeparturePoint),
		t.printer.Sprintf(locale.HeaderNumberTrain),
		t.printer.Sprintf(locale.HeaderTimeDeparture),
		t.printer.Sprintf(locale.HeaderDestination),
	))
	b.WriteString(line)
	for i, r := range records {
		b.WriteString(row(alignColumn,
			strconv.Itoa(i+1),
			r.DeparturePoint,
			r.NumberTrain,
			r.TimeDeparture,
			r.Destination,
		))
	}
	b.WriteString(line)

	_, err := io.WriteString(w, b.String())
	return err
}

func border() string {
	var b strings.Builder
	b.WriteByte('+')
	for _, c := range columns {
		b.WriteString(strings.Repeat("-", c.width+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func row(override align, cells ...string) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, c := range columns {
		a := c.align
		if override != alignColumn {
			a = override
		}
		b.WriteByte(' ')
		b.WriteString(fill(cells[i], c.width, a))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
	return b.String()
}

func fill(s string, width int, a align) string {
	switch a {
	case alignLeft:
		return runewidth.FillRight(s, width)
	case alignRight:
		return runewidth.FillLeft(s, width)
	}
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
