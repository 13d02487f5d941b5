package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/terrain/pkg/terrain"
)

const meanDigits = 2

// palette colors heights by sign.
type palette struct {
	up, down, flat *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		up:   color.New(color.FgGreen),
		down: color.New(color.FgRed),
		flat: color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.up, p.down, p.flat} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) height(h int64) string {
	s := strconv.FormatInt(h, 10)

	switch {
	case h > 0:
		return p.up.Sprint(s)
	case h < 0:
		return p.down.Sprint(s)
	default:
		return p.flat.Sprint(s)
	}
}

func newTableWriter() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

// writeTable renders position/height rows with a summary footer.
func writeTable(w io.Writer, res Result, useColor bool) error {
	p := newPalette(useColor)

	tbl := newTableWriter()
	tbl.AppendHeader(table.Row{"Position", "Height"})

	for i, h := range res.Heights {
		tbl.AppendRow(table.Row{i + 1, p.height(h)})
	}

	tbl.AppendFooter(table.Row{"Positions", humanize.Comma(int64(res.Summary.Positions))})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	_, err = fmt.Fprintln(w, summaryLine(res.Summary))
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

func summaryLine(s terrain.Summary) string {
	if s.Positions == 0 {
		return "empty profile"
	}

	sum := humanize.Comma(s.Sum)
	if s.Overflow {
		sum = "overflow"
	}

	return fmt.Sprintf("min %s at %s | max %s at %s | sum %s | mean %s",
		humanize.Comma(s.Min), humanize.Comma(int64(s.MinAt)),
		humanize.Comma(s.Max), humanize.Comma(int64(s.MaxAt)),
		sum, humanize.CommafWithDigits(s.Mean, meanDigits))
}
