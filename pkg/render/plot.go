package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	plotTitle     = "Terrain Profile"
	plotOpacity   = 0.3
	plotFullZoom  = 100
	plotSeriesKey = "height"
)

// writePlot renders the profile as an interactive HTML line chart.
func writePlot(w io.Writer, res Result) error {
	labels := make([]string, len(res.Heights))
	data := make([]opts.LineData, len(res.Heights))

	for i, h := range res.Heights {
		labels[i] = strconv.Itoa(i + 1)
		data[i] = opts.LineData{Value: h}
	}

	subtitle := "No data"
	if len(res.Heights) > 0 {
		subtitle = summaryLine(res.Summary)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    plotTitle,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: plotFullZoom}, opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Position"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Height"}),
	)
	line.SetXAxis(labels)
	line.AddSeries(plotSeriesKey, data,
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(plotOpacity)}),
	)

	err := line.Render(w)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	return nil
}
