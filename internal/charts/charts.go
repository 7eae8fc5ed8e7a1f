// Package charts renders the running-average history as an interactive
// go-echarts page.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wordletrack/internal/types"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string   // Chart title
	Subtitle string   // Chart subtitle
	Width    string   // Chart width (e.g., "900px")
	Height   string   // Chart height (e.g., "500px")
	Theme    string   // Chart theme
	Smooth   bool     // Smooth lines
	Colors   []string // Series colors, in series order
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:    "Wordle running average",
		Subtitle: "Lower is better",
		Width:    "900px",
		Height:   "500px",
		Theme:    "light",
		Smooth:   true,
		Colors:   []string{"#5470C6", "#91CC75"},
	}
}

// Series names as shown in the legend.
const (
	SeriesAverage = "Running average"
	SeriesDaily   = "Daily score"
)

// RenderRunningAverage writes a line chart of the running average per day,
// with the daily score alongside. Unplayed days leave a gap in the daily
// series. entries must be in date order.
func RenderRunningAverage(w io.Writer, entries []types.EnrichedEntry, config ChartConfig) error {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithColorsOpts(opts.Colors(config.Colors)),
	)

	xLabels := make([]string, len(entries))
	averages := make([]opts.LineData, len(entries))
	daily := make([]opts.LineData, len(entries))
	for i, e := range entries {
		xLabels[i] = e.GameDate.Key()
		averages[i] = opts.LineData{Value: e.AverageScore}
		if e.Played() {
			daily[i] = opts.LineData{Value: e.Score}
		} else {
			daily[i] = opts.LineData{Value: "-"}
		}
	}

	line.SetXAxis(xLabels).
		AddSeries(SeriesAverage, averages).
		AddSeries(SeriesDaily, daily).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(config.Smooth),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
