package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-5, 5}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "размеры %v", dims)
	}
}

func TestGrid_GetSet(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	assert.True(t, g.IsEmpty(vec.Vec2{X: 1, Y: 1}), "новая сетка пуста")
	require.True(t, g.set(vec.Vec2{X: 3, Y: 2}, block.RockBlockID))
	assert.Equal(t, block.RockBlockID, g.Get(vec.Vec2{X: 3, Y: 2}).ID)
	assert.True(t, g.IsSolid(3, 2))
	assert.Equal(t, 1, g.Count(block.RockBlockID))

	assert.False(t, g.set(vec.Vec2{X: 4, Y: 0}, block.RockBlockID), "запись вне сетки")
	assert.True(t, g.Get(vec.Vec2{X: -1, Y: 0}).IsEmpty(), "вне сетки читается воздух")
	assert.False(t, g.IsEmpty(vec.Vec2{X: -1, Y: 0}), "вне сетки ставить нельзя")
	assert.False(t, g.IsSolid(10, 10))
}

func TestGrid_NonSolidKinds(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	g.set(vec.Vec2{X: 0, Y: 0}, block.WoodBlockID)
	g.set(vec.Vec2{X: 1, Y: 0}, block.LeavesBlockID)
	g.set(vec.Vec2{X: 2, Y: 0}, block.BedrockBlockID)

	assert.False(t, g.IsSolid(0, 0), "ствол проходим")
	assert.False(t, g.IsSolid(1, 0), "листва проходима")
	assert.True(t, g.IsSolid(2, 0))
	assert.False(t, g.IsEmpty(vec.Vec2{X: 0, Y: 0}), "непроходимый блок всё равно занимает тайл")
}

func TestGrid_Column(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)
	g.set(vec.Vec2{X: 1, Y: 2}, block.SandBlockID)

	col := g.Column(1)
	require.Len(t, col, 3)
	assert.Equal(t, block.SandBlockID, col[2].ID)

	col[2] = EmptyBlock()
	assert.Equal(t, block.SandBlockID, g.Get(vec.Vec2{X: 1, Y: 2}).ID, "Column возвращает копию")
	assert.Nil(t, g.Column(5))
}

func TestMiningState(t *testing.T) {
	var m MiningState
	a := vec.Vec2{X: 1, Y: 1}
	b := vec.Vec2{X: 2, Y: 2}

	_, active := m.Target()
	assert.False(t, active)

	assert.Equal(t, 1.0, m.Add(a, 1))
	assert.Equal(t, 2.0, m.Add(a, 1))
	assert.Equal(t, 0.5, m.Add(b, 0.5), "новая цель начинается с нуля")
	assert.Zero(t, m.Progress(a))

	m.Reset()
	assert.Zero(t, m.Progress(b))
}
