package generator

import (
	"context"
	"testing"

	"github.com/lintang-b-s/meshload/pkg/engine"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name   string
		params Params
	}{
		{name: "small mesh", params: Params{Width: 3, Height: 3, Flows: 20, Broken: 2}},
		{name: "line", params: Params{Width: 6, Height: 1, Flows: 10, Broken: 0}},
		{name: "more broken than links", params: Params{Width: 2, Height: 2, Flows: 0, Broken: 10}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Generate(tt.params, rand.New(rand.NewSource(42)))
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, tt.params.Width, cfg.Grid.Width)
			assert.Equal(t, tt.params.Height, cfg.Grid.Height)
			assert.Len(t, cfg.Flows, tt.params.Flows)
			assert.Len(t, cfg.BrokenLinks, min(tt.params.Broken, len(meshLinks(tt.params.Width, tt.params.Height))))

			for _, f := range cfg.Flows {
				assert.GreaterOrEqual(t, *f.Weight, MIN_WEIGHT)
				assert.LessOrEqual(t, *f.Weight, MAX_WEIGHT)
				assert.GreaterOrEqual(t, len(f.Path), 2)
			}

			// generated paths only use surviving links
			eng, err := engine.NewEngine(cfg, engine.Options{}, zap.NewNop())
			require.NoError(t, err)
			report, err := eng.ComputeLoads(context.Background())
			require.NoError(t, err)
			assert.Empty(t, report.GetViolations())
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := Params{Width: 5, Height: 4, Flows: 30, Broken: 5}
	a, err := Generate(p, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Generate(p, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateUnreachable(t *testing.T) {
	_, err := Generate(Params{Width: 1, Height: 1, Flows: 1}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrUnreachable)

	// every link broken leaves no connected pair
	_, err = Generate(Params{Width: 2, Height: 2, Flows: 3, Broken: 4}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestShortestPath(t *testing.T) {
	broken := da.NewBrokenLinks()
	broken.Add(da.NewNode(0, 0), da.NewNode(1, 0))
	topo, err := da.NewTopology(2, 2, broken)
	require.NoError(t, err)

	path := shortestPath(topo, da.NewNode(0, 0), da.NewNode(1, 0))
	assert.Equal(t, []da.Node{da.NewNode(0, 0), da.NewNode(0, 1), da.NewNode(1, 1), da.NewNode(1, 0)}, path)
	assert.Len(t, meshLinks(3, 2), 7)
}
