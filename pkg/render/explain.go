package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/terrain/pkg/terrain"
)

// Explanation lists the operations shaping one position.
type Explanation struct {
	Position      int                    `json:"position" yaml:"position"`
	Contributions []terrain.Contribution `json:"contributions" yaml:"contributions"`
	Total         int64                  `json:"total" yaml:"total"`
}

// NewExplanation queries idx for pos.
func NewExplanation(idx *terrain.Index, pos int) Explanation {
	contributions := idx.Covering(pos)
	if contributions == nil {
		contributions = []terrain.Contribution{}
	}

	var total int64
	for _, c := range contributions {
		total += c.Amount
	}

	return Explanation{Position: pos, Contributions: contributions, Total: total}
}

// WriteExplanation renders ex to w. The plot format is not available here.
func WriteExplanation(w io.Writer, ex Explanation, opts Options) error {
	switch opts.Format {
	case FormatPlain, "":
		return writeExplanationPlain(w, ex)
	case FormatJSON:
		return writeJSON(w, ex)
	case FormatYAML:
		return writeYAML(w, ex)
	case FormatTable:
		return writeExplanationTable(w, ex, opts.Color)
	default:
		return fmt.Errorf("%w: %q is not available for explain", ErrUnknownFormat, opts.Format)
	}
}

func writeExplanationPlain(w io.Writer, ex Explanation) error {
	_, err := fmt.Fprintf(w, "position %d\n", ex.Position)
	if err != nil {
		return fmt.Errorf("write explanation: %w", err)
	}

	for _, c := range ex.Contributions {
		_, err = fmt.Fprintf(w, "  #%d %s %+d\n", c.Ordinal, c.Op, c.Amount)
		if err != nil {
			return fmt.Errorf("write explanation: %w", err)
		}
	}

	_, err = fmt.Fprintf(w, "total %d\n", ex.Total)
	if err != nil {
		return fmt.Errorf("write explanation: %w", err)
	}

	return nil
}

func writeExplanationTable(w io.Writer, ex Explanation, useColor bool) error {
	p := newPalette(useColor)

	tbl := newTableWriter()
	tbl.SetTitle("Position " + strconv.Itoa(ex.Position))
	tbl.AppendHeader(table.Row{"#", "Op", "Amount"})

	for _, c := range ex.Contributions {
		tbl.AppendRow(table.Row{c.Ordinal, c.Op.String(), p.height(c.Amount)})
	}

	tbl.AppendFooter(table.Row{"", "Total", p.height(ex.Total)})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write explanation table: %w", err)
	}

	return nil
}
