package selectlist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pangrowth/selectlist"
	"github.com/stretchr/testify/require"
)

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	text := "p1\n# a comment\n\n  p2  \n#p3\np4\n"
	names, err := selectlist.Read(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2", "p4"}, names)
}

func TestReadSet(t *testing.T) {
	set, err := selectlist.ReadSet(strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	require.True(t, set["a"])
	require.True(t, set["b"])
	require.False(t, set["c"])
}
