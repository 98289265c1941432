package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRank_StarCenterWins(t *testing.T) {
	adj := [][]float64{
		{0, 0, 0.5},
		{0, 0, 0.8},
		{0.5, 0.8, 0},
	}

	scores, err := pageRank(adj, 0.85, 100, 1e-6)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Greater(t, scores[2], scores[1])
	assert.Greater(t, scores[1], scores[0])
	assert.InDelta(t, 1, scores[0]+scores[1]+scores[2], 1e-9)
}

func TestPageRank_DisconnectedIsUniform(t *testing.T) {
	adj := [][]float64{{0, 0}, {0, 0}}

	scores, err := pageRank(adj, 0.85, 100, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, scores[0], 1e-12)
	assert.InDelta(t, 0.5, scores[1], 1e-12)
}

func TestPageRank_NotConverged(t *testing.T) {
	adj := [][]float64{
		{0, 0, 1},
		{0, 0, 1},
		{1, 1, 0},
	}

	_, err := pageRank(adj, 0.85, 1, 1e-6)
	assert.ErrorIs(t, err, ErrNotConverged)
}

func TestPageRank_Empty(t *testing.T) {
	scores, err := pageRank(nil, 0.85, 100, 1e-6)
	require.NoError(t, err)
	assert.Empty(t, scores)
}
