package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/lintang-b-s/meshload/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescription = `{
  "grid": {"width": 2, "height": 2},
  "broken_links": [{"node1": "0,0", "node2": "1,0"}],
  "flows": [
    {"weight": 5, "path": ["0,0", "0,1", "1,1"]},
    {"weight": 0.5, "path": ["1,1"]},
    {"weight": 0, "path": []}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeFile(t, "noc.json", sampleDescription))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Grid.Width)
	assert.Equal(t, 2, cfg.Grid.Height)
	require.Len(t, cfg.BrokenLinks, 1)
	assert.Equal(t, BrokenLinkConfig{Node1: "0,0", Node2: "1,0"}, cfg.BrokenLinks[0])
	require.Len(t, cfg.Flows, 3)
	assert.Equal(t, 5.0, *cfg.Flows[0].Weight)
	assert.Equal(t, []string{"0,0", "0,1", "1,1"}, cfg.Flows[0].Path)
	assert.Equal(t, 0.0, *cfg.Flows[2].Weight)

	broken, err := cfg.ParseBrokenLinks()
	require.NoError(t, err)
	assert.True(t, broken.Contains(da.NewNode(1, 0), da.NewNode(0, 0)))

	flows, err := cfg.ParseFlows()
	require.NoError(t, err)
	require.Len(t, flows, 3)
	assert.Equal(t, []da.Node{da.NewNode(0, 0), da.NewNode(0, 1), da.NewNode(1, 1)}, flows[0].GetNodes())
	assert.Equal(t, 0.5, flows[1].GetWeight())
}

func TestLoadOptionalSections(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`{"grid": {"width": 3, "height": 1}}`))
	require.NoError(t, err)
	assert.Empty(t, cfg.BrokenLinks)
	assert.Empty(t, cfg.Flows)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		wantMsg     string
	}{
		{name: "malformed json", description: `{"grid": `, wantMsg: "parsing json"},
		{name: "missing grid", description: `{"flows": []}`, wantMsg: "grid"},
		{name: "zero width", description: `{"grid": {"width": 0, "height": 2}}`, wantMsg: "width"},
		{name: "negative height", description: `{"grid": {"width": 2, "height": -3}}`, wantMsg: "height"},
		{
			name:        "missing weight",
			description: `{"grid": {"width": 2, "height": 2}, "flows": [{"path": ["0,0"]}]}`,
			wantMsg:     "weight",
		},
		{
			name:        "negative weight",
			description: `{"grid": {"width": 2, "height": 2}, "flows": [{"weight": -1, "path": ["0,0"]}]}`,
			wantMsg:     "weight",
		},
		{name: "fractional width", description: `{"grid": {"width": 2.7, "height": 2}}`, wantMsg: "expected an integer"},
		{name: "string height", description: `{"grid": {"width": 2, "height": "3"}}`, wantMsg: "decoding description"},
		{
			name:        "string weight",
			description: `{"grid": {"width": 2, "height": 2}, "flows": [{"weight": "5", "path": ["0,0"]}]}`,
			wantMsg:     "decoding description",
		},
		{
			name:        "numeric node id",
			description: `{"grid": {"width": 2, "height": 2}, "flows": [{"weight": 1, "path": [0]}]}`,
			wantMsg:     "decoding description",
		},
		{
			name:        "missing node2",
			description: `{"grid": {"width": 2, "height": 2}, "broken_links": [{"node1": "0,0"}]}`,
			wantMsg:     "node2",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.description))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
		})
	}
}

func TestDecodeIntegralFloat(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`{"grid": {"width": 3.0, "height": 1}, "flows": [{"weight": 2, "path": ["0,0"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Grid.Width)
	assert.Equal(t, 2.0, *cfg.Flows[0].Weight)
}

func TestValidationMessagesTranslated(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"grid": {"width": 0, "height": 2}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be greater than 0")

	type request struct {
		Width int `validate:"required,gt=0,lte=4096"`
	}
	err = ValidateStruct(request{Width: 5000})
	require.Error(t, err)
	msgs := ValidationMessages(err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Width must be")
	assert.Contains(t, msgs[0], "or less")
}

func TestParseErrors(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`{
		"grid": {"width": 2, "height": 2},
		"broken_links": [{"node1": "0;0", "node2": "1,0"}],
		"flows": [{"weight": 1, "path": ["0,0", "x,1"]}]
	}`))
	require.NoError(t, err)

	_, err = cfg.ParseBrokenLinks()
	require.ErrorIs(t, err, da.ErrInvalidNodeID)
	assert.Contains(t, err.Error(), "broken_links[0].node1")

	_, err = cfg.ParseFlows()
	require.ErrorIs(t, err, da.ErrInvalidNodeID)
	assert.Contains(t, err.Error(), "flows[0].path[1]")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noc.json.bz2")
	f, err := os.Create(path)
	require.NoError(t, err)
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	_, err = bz.Write([]byte(sampleDescription))
	require.NoError(t, err)
	require.NoError(t, bz.Close())
	require.NoError(t, f.Close())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Grid.Width)
	assert.Len(t, cfg.Flows, 3)
}

func TestWriteThenLoad(t *testing.T) {
	want := &NoCConfig{
		Grid:        &GridConfig{Width: 4, Height: 3},
		BrokenLinks: []BrokenLinkConfig{{Node1: "1,1", Node2: "1,2"}},
		Flows: []FlowConfig{
			NewFlowConfig(12.5, []string{"0,0", "1,0"}),
			NewFlowConfig(3, []string{"3,2", "3,1", "3,0"}),
		},
	}
	path := filepath.Join(t.TempDir(), "generated.json")
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
