// Package util holds reporting helpers shared by the benchmark suite and
// tests.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/metaopt/metaheuristics/pkg/multiobjective/framework"
)

// PlotFront renders a scatter chart comparing a found Pareto front with the
// problem's true front (when known) into an HTML file under outDir. Only
// two-objective fronts can be plotted.
func PlotFront(front []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName, outDir string) error {
	if len(front) == 0 {
		return fmt.Errorf("empty front for %s on %s", algorithmName, problem.Name())
	}
	if len(front[0]) != 2 {
		return fmt.Errorf("can only plot 2 objectives, %s has %d", problem.Name(), len(front[0]))
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s on %s", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "f1(x)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "f2(x)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}))

	if trueFront := problem.TrueParetoFront(100); trueFront != nil {
		series := make([]opts.ScatterData, len(trueFront))
		for i, p := range trueFront {
			series[i] = opts.ScatterData{
				Value:      p,
				Symbol:     "circle",
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("True Pareto Front", series)
	}

	found := make([]opts.ScatterData, len(front))
	for i, p := range front {
		found[i] = opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}
	scatter.AddSeries(fmt.Sprintf("%s Front", algorithmName), found).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	path := filepath.Join(outDir, fmt.Sprintf("%s_%s.html", problem.Name(), algorithmName))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
