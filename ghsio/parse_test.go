package ghsio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghsmst/ghsmst/ghsio"
)

func TestParse_Triangle(t *testing.T) {
	input := "3\n(0, 1, 5)\n(1, 2, 3)\n(0, 2, 9)\n"

	view, err := ghsio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, view.NumVertices())

	w, ok := view.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(5), w)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "2\n\n(0, 1, 1)\n\n"

	view, err := ghsio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, view.NumVertices())
}

func TestParse_TolerantOfMissingParensAndSpacing(t *testing.T) {
	input := "2\n0,1,1\n"

	view, err := ghsio.Parse(strings.NewReader(input))
	require.NoError(t, err)
	w, ok := view.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(1), w)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := ghsio.Parse(strings.NewReader(""))
	require.ErrorIs(t, err, ghsio.ErrEmptyInput)
}

func TestParse_BadHeader(t *testing.T) {
	_, err := ghsio.Parse(strings.NewReader("not-a-number\n"))
	require.ErrorIs(t, err, ghsio.ErrBadHeader)
}

func TestParse_CollectsAllBadEdgeLines(t *testing.T) {
	input := "3\n(0, 1)\n(0, 2, abc)\n"

	_, err := ghsio.Parse(strings.NewReader(input))
	require.Error(t, err)
	require.ErrorIs(t, err, ghsio.ErrBadEdgeLine)
	// Both malformed lines should be reported, not just the first.
	require.Contains(t, err.Error(), "line 1")
	require.Contains(t, err.Error(), "line 2")
}

func TestParse_RejectsOutOfRangeVertex(t *testing.T) {
	_, err := ghsio.Parse(strings.NewReader("2\n(0, 5, 1)\n"))
	require.Error(t, err)
}
