package environments

import (
	"encoding/json"
	"os"
	"path"
	"strconv"

	"github.com/marl-lab/gridwalk/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// VisitDataSet counts how often each cell was occupied by a walker
type VisitDataSet struct {
	Visits map[int]map[int]int
	Height int
	Width  int
}

var _ plotter.GridXYZ = &VisitDataSet{}

func (g *VisitDataSet) Dims() (int, int) {
	return g.Width, g.Height
}

func (g *VisitDataSet) Z(j, i int) float64 {
	return float64(g.Visits[i][j])
}

func (g *VisitDataSet) X(j int) float64 {
	return float64(j)
}

func (g *VisitDataSet) Y(i int) float64 {
	return float64(i)
}

func (g *VisitDataSet) Min() float64 {
	return 0.0
}

func (g *VisitDataSet) Max() float64 {
	max := 0
	for _, vals := range g.Visits {
		for _, count := range vals {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

func (g *VisitDataSet) add(c Cell) {
	if _, ok := g.Visits[c.I]; !ok {
		g.Visits[c.I] = make(map[int]int)
	}
	g.Visits[c.I][c.J] += 1
	if c.I+1 > g.Height {
		g.Height = c.I + 1
	}
	if c.J+1 > g.Width {
		g.Width = c.J + 1
	}
}

// HeatMapAnalyzer accumulates walker positions over all traces
type HeatMapAnalyzer struct {
	dataSet *VisitDataSet
}

var _ types.Analyzer = &HeatMapAnalyzer{}

func NewHeatMapAnalyzer() *HeatMapAnalyzer {
	return &HeatMapAnalyzer{
		dataSet: newVisitDataSet(),
	}
}

func newVisitDataSet() *VisitDataSet {
	return &VisitDataSet{
		Visits: make(map[int]map[int]int),
		Height: 0,
		Width:  0,
	}
}

func (h *HeatMapAnalyzer) Analyze(_ int, _ int, _ string, t *types.Trace) {
	for i := 0; i < t.Len(); i++ {
		s, _, _, _ := t.Get(i)
		ws, ok := s.(*WorldState)
		if !ok {
			continue
		}
		for _, p := range ws.Positions {
			h.dataSet.add(p)
		}
	}
}

func (h *HeatMapAnalyzer) DataSet() types.DataSet {
	return h.dataSet
}

func (h *HeatMapAnalyzer) Reset() {
	h.dataSet = newVisitDataSet()
}

// HeatMapComparator draws a visit heat map per experiment
// and dumps the raw counts as json next to it
func HeatMapComparator(figPath string) types.Comparator {
	if _, err := os.Stat(figPath); err != nil {
		os.MkdirAll(figPath, os.ModePerm)
	}
	return func(run int, s []string, ds []types.DataSet) {
		for i := 0; i < len(s); i++ {
			dataSet := ds[i].(*VisitDataSet)
			base := path.Join(figPath, strconv.Itoa(run)+"_"+s[i])

			bs, err := json.Marshal(dataSet)
			if err == nil {
				os.WriteFile(base+"_visits.json", bs, 0644)
			}

			p := plot.New()
			p.Title.Text = s[i]
			p.Add(plotter.NewHeatMap(dataSet, palette.Heat(16, 1)))
			p.Save(4*vg.Inch, 4*vg.Inch, base+"_visits.png")
		}
	}
}
