// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T) *Matrix[int32] {
	return mustNew(t, [][]int32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

func TestViewRectangles(t *testing.T) {
	m := grid(t)

	// Cases where a flat [start, end) slice of the buffer would be the wrong
	// shape are included deliberately.
	tests := []struct {
		name           string
		r0, r1, c0, c1 int
		want           [][]int32
	}{
		{"top left", 0, 2, 0, 2, [][]int32{{1, 2}, {4, 5}}},
		{"bottom right", 1, 3, 1, 3, [][]int32{{5, 6}, {8, 9}}},
		{"middle column", 0, 3, 1, 2, [][]int32{{2}, {5}, {8}}},
		{"full width", 1, 3, 0, 3, [][]int32{{4, 5, 6}, {7, 8, 9}}},
		{"single row", 1, 2, 0, 2, [][]int32{{4, 5}}},
		{"whole", 0, 3, 0, 3, [][]int32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"single cell", 2, 3, 2, 3, [][]int32{{9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := m.View(tt.r0, tt.r1, tt.c0, tt.c1)
			require.NoError(t, err)
			require.Equal(t, len(tt.want), v.Rows())
			require.Equal(t, len(tt.want[0]), v.Cols())

			for i, row := range tt.want {
				for j, want := range row {
					got, err := v.At(i, j)
					require.NoError(t, err)
					assert.Equal(t, want, got, "(%d, %d)", i, j)
				}
			}
			assert.True(t, v.ToMatrix().Equal(mustNew(t, tt.want)))
		})
	}
}

func TestViewInvalidRanges(t *testing.T) {
	m := grid(t)
	tests := []struct {
		r0, r1, c0, c1 int
	}{
		{-1, 2, 0, 2},
		{0, 4, 0, 2},
		{2, 1, 0, 2},
		{0, 2, 0, 4},
		{0, 2, 2, 1},
		{0, 2, -1, 1},
	}
	for _, tt := range tests {
		_, err := m.View(tt.r0, tt.r1, tt.c0, tt.c1)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "View(%d, %d, %d, %d)", tt.r0, tt.r1, tt.c0, tt.c1)
	}
}

func TestViewEmpty(t *testing.T) {
	m := grid(t)

	v, err := m.View(1, 1, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Rows())
	assert.Empty(t, v.String())

	v, err = m.View(0, 2, 3, 3)
	require.NoError(t, err)
	r, c := v.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)
	assert.Equal(t, "[]\n[]\n", v.String())
	assert.Equal(t, 0, v.ToMatrix().Len())
}

func TestViewAtOutOfRange(t *testing.T) {
	v, err := grid(t).View(0, 2, 0, 2)
	require.NoError(t, err)

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.At(0, 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestViewObservesSource(t *testing.T) {
	m := grid(t)
	v, err := m.View(1, 3, 1, 3)
	require.NoError(t, err)

	snapshot := v.ToMatrix()
	require.NoError(t, m.Set(2, 2, 90))

	got, _ := v.At(1, 1)
	assert.Equal(t, int32(90), got)

	old, _ := snapshot.At(1, 1)
	assert.Equal(t, int32(9), old, "ToMatrix must copy")
}

func TestViewEqualAndString(t *testing.T) {
	m := mustNew(t, [][]int32{
		{1, 2, 1, 2},
		{3, 4, 3, 4},
	})
	left, _ := m.View(0, 2, 0, 2)
	right, _ := m.View(0, 2, 2, 4)
	top, _ := m.View(0, 1, 0, 4)

	assert.True(t, left.Equal(right))
	assert.False(t, left.Equal(top))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", right.String())
}
