package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdknn/record"
)

// TestNew_CopiesFeatures ensures New detaches the record from the caller's slice.
func TestNew_CopiesFeatures(t *testing.T) {
	src := []float64{1, 2, 3}
	r := record.New(src, "a")
	src[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, r.Features, "New must copy features")
	assert.Equal(t, 3, r.Dim())
}

// TestEqual covers structural equality on features and label.
func TestEqual(t *testing.T) {
	a := record.New([]int{1, 2}, "x")

	assert.True(t, a.Equal(record.New([]int{1, 2}, "x")))
	assert.False(t, a.Equal(record.New([]int{1, 2}, "y")), "label differs")
	assert.False(t, a.Equal(record.New([]int{1, 3}, "x")), "feature differs")
	assert.False(t, a.Equal(record.New([]int{1}, "x")), "length differs")
}

// TestCloneAll_Independent verifies deep copies share no feature storage.
func TestCloneAll_Independent(t *testing.T) {
	rs := []record.Record[float32, int]{
		{Features: []float32{1, 1}, Label: 1},
		{Features: []float32{2, 2}, Label: 2},
	}
	cp := record.CloneAll(rs)
	require.Len(t, cp, 2)

	rs[1].Features[0] = -5
	assert.Equal(t, float32(2), cp[1].Features[0])
	assert.Equal(t, 2, cp[1].Label)
	assert.Nil(t, record.CloneAll[float32, int](nil))
}

func TestCountLabels(t *testing.T) {
	rs := []record.Record[float64, string]{
		record.New([]float64{0}, "a"),
		record.New([]float64{1}, "b"),
		record.New([]float64{2}, "a"),
	}

	assert.Equal(t, map[string]int{"a": 2, "b": 1}, record.CountLabels(rs))
	assert.Equal(t, []string{"a", "b", "a"}, record.Labels(rs))
}
