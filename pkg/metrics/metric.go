package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lintang-b-s/meshload/pkg/accumulator"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/lintang-b-s/meshload/pkg/util"
)

type Summary struct {
	LoadedEdges   int
	TopologyEdges int
	TotalLoad     float64
	MaxLoad       float64
	MaxEdge       da.Edge
	MeanLoad      float64
	// fraction of topology edges carrying at least one flow step
	Utilization float64
}

// Report is the sorted edge-load listing of one computation plus the integrity
// violations found while building it.
type Report struct {
	loads      []accumulator.EdgeLoad
	violations []accumulator.Violation
	summary    Summary
}

func NewReport(res *accumulator.Result, topo *da.Topology) *Report {
	loads := res.Sorted()
	return &Report{
		loads:      loads,
		violations: res.Violations,
		summary:    summarize(loads, topo),
	}
}

func summarize(loads []accumulator.EdgeLoad, topo *da.Topology) Summary {
	values := make([]float64, 0, len(loads))
	for _, el := range loads {
		values = append(values, el.Load)
	}

	s := Summary{
		LoadedEdges:   len(loads),
		TopologyEdges: topo.NumberOfEdges(),
		TotalLoad:     util.SumG(values),
	}
	if best, idx := util.MaxG(values); idx >= 0 {
		s.MaxLoad = best
		s.MaxEdge = loads[idx].Edge
		s.MeanLoad = s.TotalLoad / float64(len(values))
	}

	used := 0
	for _, el := range loads {
		if topo.HasEdge(el.Edge.From, el.Edge.To) {
			used++
		}
	}
	if s.TopologyEdges > 0 {
		s.Utilization = float64(used) / float64(s.TopologyEdges)
	}
	return s
}

func (r *Report) GetLoads() []accumulator.EdgeLoad {
	return r.loads
}

func (r *Report) GetViolations() []accumulator.Violation {
	return r.violations
}

func (r *Report) GetSummary() Summary {
	return r.summary
}

// Print writes the human readable listing, one "from -> to : load" line per edge.
func (r *Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Edge Loads:\n-----------\n"); err != nil {
		return err
	}
	for _, el := range r.loads {
		_, err := fmt.Fprintf(w, "%s -> %s : %s\n", el.Edge.From, el.Edge.To, FormatLoad(el.Load))
		if err != nil {
			return err
		}
	}
	return nil
}

func FormatLoad(load float64) string {
	return strconv.FormatFloat(load, 'g', -1, 64)
}
