package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrBadParamInput, "loading %s", "cfg.json")

	assert.Equal(t, "loading cfg.json: boom", err.Error())
	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Equal(t, ErrBadParamInput, ErrorCode(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, ErrInternalServerError, ErrorCode(orig))
}

func TestSumAndMax(t *testing.T) {
	testCases := []struct {
		name    string
		arr     []float64
		wantSum float64
		wantMax float64
		wantIdx int
	}{
		{name: "empty", arr: nil, wantSum: 0, wantMax: 0, wantIdx: -1},
		{name: "values", arr: []float64{1.5, 4, 2.5}, wantSum: 8, wantMax: 4, wantIdx: 1},
		{name: "first max wins", arr: []float64{3, 3}, wantSum: 6, wantMax: 3, wantIdx: 0},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSum, SumG(tt.arr))
			best, idx := MaxG(tt.arr)
			assert.Equal(t, tt.wantMax, best)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
	assert.Equal(t, 12.35, RoundFloat(12.3456, 2))
}
