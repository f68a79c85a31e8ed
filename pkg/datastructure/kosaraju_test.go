package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKosaraju(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
		broken        [][2]Node
		wantCount     int
		wantLargest   int
	}{
		{name: "intact mesh", width: 4, height: 3, wantCount: 1, wantLargest: 12},
		{name: "single node", width: 1, height: 1, wantCount: 1, wantLargest: 1},
		{
			name: "corner cut off", width: 2, height: 2,
			broken:    [][2]Node{{NewNode(0, 0), NewNode(1, 0)}, {NewNode(0, 0), NewNode(0, 1)}},
			wantCount: 2, wantLargest: 3,
		},
		{
			name: "line split in half", width: 4, height: 1,
			broken:    [][2]Node{{NewNode(1, 0), NewNode(2, 0)}},
			wantCount: 2, wantLargest: 2,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			bl := NewBrokenLinks()
			for _, b := range tt.broken {
				bl.Add(b[0], b[1])
			}
			topo, err := NewTopology(tt.width, tt.height, bl)
			require.NoError(t, err)

			c := topo.RunKosaraju()
			assert.Equal(t, tt.wantCount, c.NumberOfComponents())
			assert.Equal(t, tt.wantLargest, c.LargestSize())
		})
	}
}

func TestComponentsConnected(t *testing.T) {
	bl := NewBrokenLinks()
	bl.Add(NewNode(1, 0), NewNode(2, 0))
	topo, err := NewTopology(4, 1, bl)
	require.NoError(t, err)

	c := topo.RunKosaraju()
	assert.True(t, c.Connected(NewNode(0, 0), NewNode(1, 0)))
	assert.True(t, c.Connected(NewNode(3, 0), NewNode(2, 0)))
	assert.False(t, c.Connected(NewNode(1, 0), NewNode(2, 0)))
	assert.False(t, c.Connected(NewNode(0, 0), NewNode(9, 0)))
	assert.Equal(t, -1, c.GetSCC(NewNode(-1, 0)))
	assert.Equal(t, 2, c.GetSize(c.GetSCC(NewNode(0, 0))))
}
