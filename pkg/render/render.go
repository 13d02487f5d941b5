// Package render writes materialized height profiles in the supported output
// formats.
package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/terrain/pkg/alg/levenshtein"
	"github.com/Sumatoshi-tech/terrain/pkg/terrain"
)

// Output formats.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
	FormatPlot  = "plot"
)

const (
	jsonIndent = "  "
	yamlIndent = 2

	// suggestDistance bounds how far a typo may be from a format name to
	// earn a hint.
	suggestDistance = 2
)

// ErrUnknownFormat is returned for a format name not in Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format name.
var Formats = []string{FormatPlain, FormatJSON, FormatYAML, FormatTable, FormatPlot}

// Options controls rendering.
type Options struct {
	Format string
	// Color enables ANSI colors in the table format.
	Color bool
}

// Result is one materialized profile.
type Result struct {
	Heights []int64
	Summary terrain.Summary
}

// NewResult pairs heights with their summary.
func NewResult(heights []int64) Result {
	return Result{Heights: heights, Summary: terrain.Summarize(heights)}
}

type document struct {
	Positions int             `json:"positions" yaml:"positions"`
	Heights   []int64         `json:"heights" yaml:"heights,flow"`
	Summary   terrain.Summary `json:"summary" yaml:"summary"`
}

// ValidateFormat reports whether format is supported.
func ValidateFormat(format string) error {
	if slices.Contains(Formats, format) {
		return nil
	}

	if best, ok := levenshtein.Closest(format, Formats, suggestDistance); ok {
		return fmt.Errorf("%w: %q, did you mean %q?", ErrUnknownFormat, format, best)
	}

	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
}

// Write renders res to w.
func Write(w io.Writer, res Result, opts Options) error {
	switch opts.Format {
	case FormatPlain, "":
		return writePlain(w, res.Heights)
	case FormatJSON:
		return writeJSON(w, newDocument(res))
	case FormatYAML:
		return writeYAML(w, newDocument(res))
	case FormatTable:
		return writeTable(w, res, opts.Color)
	case FormatPlot:
		return writePlot(w, res)
	default:
		return ValidateFormat(opts.Format)
	}
}

func newDocument(res Result) document {
	heights := res.Heights
	if heights == nil {
		heights = []int64{}
	}

	return document{Positions: len(heights), Heights: heights, Summary: res.Summary}
}

// writePlain emits one height per line.
func writePlain(w io.Writer, heights []int64) error {
	bw := bufio.NewWriter(w)

	buf := make([]byte, 0, strconv.IntSize)
	for _, h := range heights {
		buf = strconv.AppendInt(buf[:0], h, 10)
		buf = append(buf, '\n')

		_, err := bw.Write(buf)
		if err != nil {
			return fmt.Errorf("write heights: %w", err)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("flush heights: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("yaml close: %w", err)
	}

	return nil
}
