package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

func TestItemDrop_SpawnVelocity(t *testing.T) {
	p := DefaultDropPhysics(32)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		d := newItemDrop(block.DirtBlockID, vec.Vec2Float{X: 10, Y: 10}, rng, p)
		assert.GreaterOrEqual(t, d.Velocity.X, -2.0)
		assert.LessOrEqual(t, d.Velocity.X, 2.0)
		assert.Equal(t, -4.0, d.Velocity.Y)
		assert.Equal(t, 16.0, d.Size)
	}
}

func TestItemDrop_LandsOnSolidGround(t *testing.T) {
	const tile = 32.0
	g, err := NewGrid(5, 5)
	require.NoError(t, err)
	for x := 0; x < 5; x++ {
		g.set(vec.Vec2{X: x, Y: 4}, block.RockBlockID)
	}

	p := DefaultDropPhysics(tile)
	p.MaxSpawnSpeedX = 0
	d := newItemDrop(block.CobblestoneBlockID, vec.Vec2{X: 2, Y: 2}.Center(tile), rand.New(rand.NewSource(1)), p)

	for i := 0; i < 100; i++ {
		d.Update(g, tile, p)
	}

	assert.Equal(t, 4*tile-d.Size, d.Pos.Y, "предмет лежит на верхней грани тайла")
	assert.Zero(t, d.Velocity.Y)
	assert.InDelta(t, 10.0, d.Bobbing, 1e-9, "фаза растёт на 0.1 за тик")
}

func TestItemDrop_FallsThroughNonSolid(t *testing.T) {
	const tile = 32.0
	g, err := NewGrid(3, 6)
	require.NoError(t, err)
	g.set(vec.Vec2{X: 1, Y: 3}, block.LeavesBlockID)
	g.set(vec.Vec2{X: 1, Y: 5}, block.DirtBlockID)

	p := DefaultDropPhysics(tile)
	p.MaxSpawnSpeedX = 0
	d := newItemDrop(block.DirtBlockID, vec.Vec2Float{X: 40, Y: 40}, rand.New(rand.NewSource(1)), p)

	for i := 0; i < 100; i++ {
		d.Update(g, tile, p)
	}
	assert.Equal(t, 5*tile-d.Size, d.Pos.Y, "листва не держит предметы")
}

func TestItemDrop_FrictionOnGround(t *testing.T) {
	const tile = 32.0
	g, err := NewGrid(40, 3)
	require.NoError(t, err)
	for x := 0; x < 40; x++ {
		g.set(vec.Vec2{X: x, Y: 2}, block.RockBlockID)
	}

	p := DefaultDropPhysics(tile)
	d := &ItemDrop{Kind: block.SandBlockID, Pos: vec.Vec2Float{X: 300, Y: 2*tile - 16}, Velocity: vec.Vec2Float{X: 2}, Size: 16}

	d.Update(g, tile, p)
	assert.InDelta(t, 1.6, d.Velocity.X, 1e-9)
	d.Update(g, tile, p)
	assert.InDelta(t, 1.28, d.Velocity.X, 1e-9)
}

func TestItemDrop_BobOffset(t *testing.T) {
	d := &ItemDrop{}
	assert.Zero(t, d.BobOffset(3))
	d.Bobbing = 1.5707963267948966
	assert.InDelta(t, 3.0, d.BobOffset(3), 1e-9)
}
