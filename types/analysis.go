package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CoverageAnalyzer counts the unique states visited so far, per episode
type CoverageAnalyzer struct {
	uniqueStates    map[string]bool
	numUniqueStates []int
	abstractor      StateAbstractor
}

var _ Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer(abstractor StateAbstractor) *CoverageAnalyzer {
	if abstractor == nil {
		abstractor = HashAbstractor()
	}
	return &CoverageAnalyzer{
		uniqueStates:    make(map[string]bool),
		numUniqueStates: make([]int, 0),
		abstractor:      abstractor,
	}
}

func (c *CoverageAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	for j := 0; j < t.Len(); j++ {
		s, _, _, _ := t.Get(j)
		sHash := c.abstractor(s)
		if _, ok := c.uniqueStates[sHash]; !ok {
			c.uniqueStates[sHash] = true
		}
	}
	c.numUniqueStates = append(c.numUniqueStates, len(c.uniqueStates))
}

func (c *CoverageAnalyzer) DataSet() DataSet {
	return c.numUniqueStates
}

func (c *CoverageAnalyzer) Reset() {
	c.uniqueStates = make(map[string]bool)
	c.numUniqueStates = make([]int, 0)
}

// CoveragePlotter plots the number of unique states against episodes
// for each experiment in the comparison
func CoveragePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, s []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "States covered"
		for i := 0; i < len(s); i++ {
			uniqueStates := ds[i].([]int)
			points := make(plotter.XYs, len(uniqueStates))
			for j, v := range uniqueStates {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(s[i], line)
			fmt.Printf("Number of unique states: %d for experiment: %s\n", uniqueStates[len(uniqueStates)-1], s[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"))
	}
}

// ReturnAnalyzer records the total reward of every episode
type ReturnAnalyzer struct {
	returns []float64
}

var _ Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{
		returns: make([]float64, 0),
	}
}

func (r *ReturnAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	r.returns = append(r.returns, t.Return())
}

func (r *ReturnAnalyzer) DataSet() DataSet {
	return r.returns
}

func (r *ReturnAnalyzer) Reset() {
	r.returns = make([]float64, 0)
}

// ReturnPlotter plots the episode returns of each experiment
func ReturnPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, s []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Return"
		for i := 0; i < len(s); i++ {
			returns := ds[i].([]float64)
			points := make(plotter.XYs, len(returns))
			for j, v := range returns {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(s[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_returns.png"))
	}
}

// MonitorAnalyzer counts the episodes whose trace satisfies the monitor
type MonitorAnalyzer struct {
	monitor   *Monitor
	satisfied int
	episodes  int
}

var _ Analyzer = &MonitorAnalyzer{}

func NewMonitorAnalyzer(monitor *Monitor) *MonitorAnalyzer {
	return &MonitorAnalyzer{
		monitor: monitor,
	}
}

func (m *MonitorAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	m.episodes += 1
	if _, ok := m.monitor.Check(t); ok {
		m.satisfied += 1
	}
}

func (m *MonitorAnalyzer) DataSet() DataSet {
	return []int{m.satisfied, m.episodes}
}

func (m *MonitorAnalyzer) Reset() {
	m.satisfied = 0
	m.episodes = 0
}

// MonitorReporter prints how often each experiment satisfied the monitor
func MonitorReporter(what string) Comparator {
	return func(run int, s []string, ds []DataSet) {
		for i := 0; i < len(s); i++ {
			counts := ds[i].([]int)
			fmt.Printf("%s satisfied in %d/%d episodes for experiment: %s\n", what, counts[0], counts[1], s[i])
		}
	}
}

// VisitGraphAnalyzer builds the explored state graph of an experiment
type VisitGraphAnalyzer struct {
	graph *VisitGraph
}

var _ Analyzer = &VisitGraphAnalyzer{}

func NewVisitGraphAnalyzer() *VisitGraphAnalyzer {
	return &VisitGraphAnalyzer{
		graph: NewVisitGraph(),
	}
}

func (v *VisitGraphAnalyzer) Analyze(_ int, _ int, _ string, t *Trace) {
	for i := 0; i < t.Len(); i++ {
		s, a, ns, _ := t.Get(i)
		v.graph.Update(s, a.Hash(), ns)
	}
}

func (v *VisitGraphAnalyzer) DataSet() DataSet {
	return v.graph
}

func (v *VisitGraphAnalyzer) Reset() {
	v.graph = NewVisitGraph()
}

// VisitGraphRecorder writes the explored state graph of each experiment to a json file
func VisitGraphRecorder(savePath string) Comparator {
	if _, err := os.Stat(savePath); err != nil {
		os.MkdirAll(savePath, os.ModePerm)
	}
	return func(run int, s []string, ds []DataSet) {
		for i := 0; i < len(s); i++ {
			graph := ds[i].(*VisitGraph)
			graph.Record(path.Join(savePath, strconv.Itoa(run)+"_"+s[i]+"_graph.json"))
		}
	}
}
