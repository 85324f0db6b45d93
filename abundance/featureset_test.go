package abundance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDenseAndSparseAgree(t *testing.T) {
	const n = int32(200)
	members := []int32{0, 1, 63, 64, 65, 127, 128, 199}

	dense := newDenseAccumulator(n)
	sparse := newSparseAccumulator()
	for _, id := range members {
		dense.add(id)
		sparse.add(id)
	}
	dfs := dense.finish()
	sfs := sparse.finish()

	require.Equal(t, dfs.count(), sfs.count())
	for id := int32(0); id < n; id++ {
		require.Equal(t, dfs.has(id), sfs.has(id), "id %d", id)
	}

	var dOut, sOut []int32
	dfs.forEach(func(id int32) { dOut = append(dOut, id) })
	sfs.forEach(func(id int32) { sOut = append(sOut, id) })
	require.Equal(t, dOut, sOut)
}
