package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/tomaskol/sigflow/internal/models"
)

// PlotTrace renders every column of a trace as an ASCII chart.
func PlotTrace(trace *models.Trace, height, width int) string {
	var b strings.Builder
	for _, name := range trace.Columns {
		data, err := trace.Column(name)
		if err != nil || len(data) == 0 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("%s vs time", name)),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// PlotSeries renders a single series.
func PlotSeries(data []float64, caption string, height, width int) string {
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
