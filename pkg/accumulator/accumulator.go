package accumulator

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/lintang-b-s/meshload/pkg/concurrent"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
)

type ViolationReason string

const (
	// the link exists in the full mesh but was declared broken
	REASON_BROKEN ViolationReason = "broken"
	// both nodes are inside the grid but are not mesh neighbors
	REASON_NOT_ADJACENT ViolationReason = "not_adjacent"
	// at least one node lies outside the grid
	REASON_OUT_OF_GRID ViolationReason = "out_of_grid"
)

// Violation records a flow step that uses an edge absent from the topology.
// The step is still counted in the loads.
type Violation struct {
	FlowIndex int
	StepIndex int
	Edge      da.Edge
	Reason    ViolationReason
}

func (v Violation) String() string {
	return fmt.Sprintf("edge %s used by flow %d (step %d) but not in graph definition (%s)",
		v.Edge, v.FlowIndex, v.StepIndex, v.Reason)
}

type Result struct {
	Loads      da.EdgeLoads
	Violations []Violation
}

func newResult() *Result {
	return &Result{
		Loads:      make(da.EdgeLoads),
		Violations: make([]Violation, 0),
	}
}

type EdgeLoad struct {
	Edge da.Edge
	Load float64
}

// Sorted returns the loads ordered by edge.
func (r *Result) Sorted() []EdgeLoad {
	edges := slices.SortedFunc(maps.Keys(r.Loads), da.CompareEdge)

	sorted := make([]EdgeLoad, 0, len(edges))
	for _, e := range edges {
		sorted = append(sorted, EdgeLoad{Edge: e, Load: r.Loads[e]})
	}
	return sorted
}

// Accumulate sums flow weights per directed edge. Steps over edges missing from the
// topology produce a Violation and are counted anyway.
func Accumulate(topo *da.Topology, flows []da.Flow) *Result {
	res := newResult()
	for i, flow := range flows {
		accumulateFlow(topo, i, flow, res)
	}
	return res
}

func accumulateFlow(topo *da.Topology, flowIndex int, flow da.Flow, res *Result) {
	for step, e := range flow.Edges() {
		if !topo.HasEdge(e.From, e.To) {
			res.Violations = append(res.Violations, Violation{
				FlowIndex: flowIndex,
				StepIndex: step,
				Edge:      e,
				Reason:    classify(topo, e),
			})
		}
		res.Loads.Add(e, flow.GetWeight())
	}
}

func classify(topo *da.Topology, e da.Edge) ViolationReason {
	if !topo.InBounds(e.From) || !topo.InBounds(e.To) {
		return REASON_OUT_OF_GRID
	}
	if _, adjacent := da.DirectionBetween(e.From, e.To); adjacent {
		return REASON_BROKEN
	}
	return REASON_NOT_ADJACENT
}

// Merge adds every load of src into dst.
func Merge(dst, src da.EdgeLoads) {
	for e, load := range src {
		dst.Add(e, load)
	}
}

type flowChunk struct {
	offset int
	flows  []da.Flow
}

// AccumulateParallel splits flows into chunks, accumulates each chunk into its own
// partial result on a worker pool and merges the partials. Violations come back in
// (flow, step) order, the same order Accumulate produces.
func AccumulateParallel(ctx context.Context, topo *da.Topology, flows []da.Flow, numWorkers int) (*Result, error) {
	if numWorkers <= 1 || len(flows) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Accumulate(topo, flows), nil
	}

	chunkSize := (len(flows) + numWorkers - 1) / numWorkers
	chunks := make([]flowChunk, 0, numWorkers)
	for start := 0; start < len(flows); start += chunkSize {
		end := min(start+chunkSize, len(flows))
		chunks = append(chunks, flowChunk{offset: start, flows: flows[start:end]})
	}

	partials, err := concurrent.Run(ctx, numWorkers, chunks, func(c flowChunk) *Result {
		partial := newResult()
		for i, flow := range c.flows {
			accumulateFlow(topo, c.offset+i, flow, partial)
		}
		return partial
	})
	if err != nil {
		return nil, err
	}

	res := newResult()
	for _, partial := range partials {
		Merge(res.Loads, partial.Loads)
		res.Violations = append(res.Violations, partial.Violations...)
	}
	sort.Slice(res.Violations, func(i, j int) bool {
		a, b := res.Violations[i], res.Violations[j]
		if a.FlowIndex != b.FlowIndex {
			return a.FlowIndex < b.FlowIndex
		}
		return a.StepIndex < b.StepIndex
	})
	return res, nil
}
