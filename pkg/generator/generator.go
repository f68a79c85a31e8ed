package generator

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/meshload/pkg/config"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/lintang-b-s/meshload/pkg/util"
	"golang.org/x/exp/rand"
)

var (
	ErrUnreachable = errors.New("generator: could not find enough connected node pairs")
)

const (
	MIN_WEIGHT = 1.0
	MAX_WEIGHT = 100.0
	// attempts allowed per requested flow before giving up on a fragmented mesh
	ATTEMPTS_PER_FLOW = 100
)

type Params struct {
	Width  int
	Height int
	Flows  int
	Broken int
}

// Generate builds a random description: Broken distinct links of a Width x Height mesh are
// broken, then Flows flows are routed between random distinct node pairs along a
// shortest path of the damaged mesh.
func Generate(p Params, rd *rand.Rand) (*config.NoCConfig, error) {
	links := meshLinks(p.Width, p.Height)
	numBroken := util.MinInt(util.MaxInt(p.Broken, 0), len(links))
	rd.Shuffle(len(links), func(i, j int) {
		links[i], links[j] = links[j], links[i]
	})

	broken := da.NewBrokenLinks()
	brokenCfg := make([]config.BrokenLinkConfig, 0, numBroken)
	for _, link := range links[:numBroken] {
		broken.Add(link.From, link.To)
		brokenCfg = append(brokenCfg, config.BrokenLinkConfig{
			Node1: link.From.String(),
			Node2: link.To.String(),
		})
	}

	topo, err := da.NewTopology(p.Width, p.Height, broken)
	if err != nil {
		return nil, err
	}

	flows := make([]config.FlowConfig, 0, p.Flows)
	nodes := topo.GetNodes()
	components := topo.RunKosaraju()
	if p.Flows > 0 && components.LargestSize() < 2 {
		return nil, fmt.Errorf("%w: every node is isolated", ErrUnreachable)
	}
	maxAttempts := ATTEMPTS_PER_FLOW * p.Flows
	for attempts := 0; len(flows) < p.Flows; attempts++ {
		if attempts >= maxAttempts {
			return nil, fmt.Errorf("%w: generated %d of %d flows", ErrUnreachable, len(flows), p.Flows)
		}
		u := nodes[rd.Intn(len(nodes))]
		v := nodes[rd.Intn(len(nodes))]
		if u == v || !components.Connected(u, v) {
			continue
		}
		path := shortestPath(topo, u, v)
		if path == nil {
			continue
		}

		ids := make([]string, 0, len(path))
		for _, n := range path {
			ids = append(ids, n.String())
		}
		weight := util.RoundFloat(MIN_WEIGHT+rd.Float64()*(MAX_WEIGHT-MIN_WEIGHT), 2)
		flows = append(flows, config.NewFlowConfig(weight, ids))
	}

	return &config.NoCConfig{
		Grid:        &config.GridConfig{Width: p.Width, Height: p.Height},
		BrokenLinks: brokenCfg,
		Flows:       flows,
	}, nil
}

// meshLinks lists every undirected mesh link once, as an east or north edge.
func meshLinks(width, height int) []da.Edge {
	links := make([]da.Edge, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := da.NewNode(x, y)
			if x+1 < width {
				links = append(links, da.NewEdge(u, da.EAST.Step(u)))
			}
			if y+1 < height {
				links = append(links, da.NewEdge(u, da.NORTH.Step(u)))
			}
		}
	}
	return links
}

// shortestPath runs a breadth first search from s and returns the node sequence to t,
// or nil when t is unreachable.
func shortestPath(topo *da.Topology, s, t da.Node) []da.Node {
	parent := map[da.Node]da.Node{s: s}
	queue := []da.Node{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			break
		}
		for _, v := range topo.GetNeighbors(u) {
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}
	if _, ok := parent[t]; !ok {
		return nil
	}

	path := []da.Node{t}
	for cur := t; cur != s; {
		cur = parent[cur]
		path = append(path, cur)
	}
	return util.ReverseG(path)
}
