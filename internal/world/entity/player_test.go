package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

const tile = 32.0

// testTerrain: сетка твёрдых тайлов для проверки коллизий
type testTerrain struct {
	w, h  int
	solid map[vec.Vec2]bool
}

func newTestTerrain(w, h int) *testTerrain {
	return &testTerrain{w: w, h: h, solid: make(map[vec.Vec2]bool)}
}

func (tt *testTerrain) IsSolid(col, row int) bool { return tt.solid[vec.Vec2{X: col, Y: row}] }
func (tt *testTerrain) Width() int { return tt.w }
func (tt *testTerrain) Height() int { return tt.h }
func (tt *testTerrain) TileSize() float64 { return tile }

func (tt *testTerrain) floor(row int) *testTerrain {
	for x := 0; x < tt.w; x++ {
		tt.solid[vec.Vec2{X: x, Y: row}] = true
	}
	return tt
}

func newTestPlayer(pos vec.Vec2Float) *Player {
	return NewPlayer(1, pos, DefaultPlayerConfig(tile))
}

func TestPlayer_FallsAndLands(t *testing.T) {
	terrain := newTestTerrain(10, 10).floor(8)
	p := newTestPlayer(vec.Vec2Float{X: 64, Y: 0})

	for i := 0; i < 120; i++ {
		p.Update(terrain)
	}

	assert.Equal(t, 8*tile-64, p.Pos().Y, "тело стоит на верхней грани пола")
	assert.Zero(t, p.Velocity.Y)
	assert.False(t, p.Jumping)
}

func TestPlayer_TerminalVelocity(t *testing.T) {
	terrain := newTestTerrain(4, 1000)
	p := newTestPlayer(vec.Vec2Float{X: 0, Y: 0})

	for i := 0; i < 40; i++ {
		p.Update(terrain)
		require.LessOrEqual(t, p.Velocity.Y, 15.0)
	}
	assert.Equal(t, 15.0, p.Velocity.Y)
}

func TestPlayer_FallThroughWorldResets(t *testing.T) {
	terrain := newTestTerrain(4, 4)
	p := newTestPlayer(vec.Vec2Float{X: 0, Y: 4*tile - 1})
	p.Velocity.Y = 10

	p.Update(terrain)
	assert.Zero(t, p.Pos().Y, "провал под мир возвращает тело наверх")
	assert.Zero(t, p.Velocity.Y)
}

func TestPlayer_JumpOnlyFromGround(t *testing.T) {
	terrain := newTestTerrain(10, 10).floor(8)
	p := newTestPlayer(vec.Vec2Float{X: 64, Y: 8*tile - 64})

	require.True(t, p.Jump())
	assert.Equal(t, -15.0, p.Velocity.Y)
	assert.False(t, p.Jump(), "двойной прыжок запрещён")

	p.Update(terrain)
	assert.Less(t, p.Pos().Y, 8*tile-64, "тело поднимается")

	for i := 0; i < 100 && p.Jumping; i++ {
		p.Update(terrain)
	}
	assert.False(t, p.Jumping, "приземление снимает флаг прыжка")
	assert.True(t, p.Jump())
}

func TestPlayer_HeadBump(t *testing.T) {
	terrain := newTestTerrain(10, 10).floor(8)
	terrain.solid[vec.Vec2{X: 2, Y: 4}] = true
	p := newTestPlayer(vec.Vec2Float{X: 64, Y: 8*tile - 64})

	p.Jump()
	for i := 0; i < 3; i++ {
		p.Update(terrain)
	}
	assert.Equal(t, 5*tile, p.Pos().Y, "голова упирается в нижнюю грань блока")
	assert.Zero(t, p.Velocity.Y)
	assert.True(t, p.Jumping, "удар головой не приземляет")
}

func TestPlayer_TopClamp(t *testing.T) {
	terrain := newTestTerrain(10, 10)
	p := newTestPlayer(vec.Vec2Float{X: 64, Y: 2})
	p.Jump()

	p.Update(terrain)
	assert.Zero(t, p.Pos().Y)
	assert.Zero(t, p.Velocity.Y)
}

func TestPlayer_MoveBlockedByWall(t *testing.T) {
	terrain := newTestTerrain(10, 10).floor(8)
	terrain.solid[vec.Vec2{X: 4, Y: 7}] = true // на уровне ног
	p := newTestPlayer(vec.Vec2Float{X: 64, Y: 8*tile - 64})

	for i := 0; i < 20; i++ {
		p.Move(1, terrain)
	}
	assert.Equal(t, 4*tile-tile, p.Pos().X, "тело прижато к левой грани стены")

	terrain.solid[vec.Vec2{X: 0, Y: 6}] = true // на уровне головы
	for i := 0; i < 40; i++ {
		p.Move(-1, terrain)
	}
	assert.Equal(t, tile, p.Pos().X)
}

func TestPlayer_MoveClampedToWorld(t *testing.T) {
	terrain := newTestTerrain(5, 10)
	p := newTestPlayer(vec.Vec2Float{X: 2, Y: 0})

	p.Move(-1, terrain)
	assert.Zero(t, p.Pos().X)

	for i := 0; i < 100; i++ {
		p.Move(1, terrain)
	}
	assert.Equal(t, 5*tile-tile, p.Pos().X)
}

func TestPlayer_CanPickupStrictRadius(t *testing.T) {
	p := newTestPlayer(vec.Vec2Float{X: 0, Y: 0})
	c := p.Center()

	assert.True(t, p.CanPickup(vec.Vec2Float{X: c.X + 47.9, Y: c.Y}))
	assert.False(t, p.CanPickup(vec.Vec2Float{X: c.X + 48, Y: c.Y}), "ровно на радиусе не подбирается")
	assert.False(t, p.CanPickup(vec.Vec2Float{X: c.X, Y: c.Y + 100}))
}

func TestPlayer_Slots(t *testing.T) {
	p := newTestPlayer(vec.Vec2Float{})
	assert.Equal(t, block.DirtBlockID, p.SelectedKind())

	assert.True(t, p.SelectSlot(7))
	assert.Equal(t, block.CobblestoneBlockID, p.SelectedKind())
	assert.False(t, p.SelectSlot(8))
	assert.False(t, p.SelectSlot(-1))
	assert.Equal(t, 7, p.SelectedSlot(), "неверный индекс не меняет выбор")

	p.CycleSlot(1)
	assert.Equal(t, 0, p.SelectedSlot(), "прокрутка по кругу")
	p.CycleSlot(-1)
	assert.Equal(t, 7, p.SelectedSlot())
	p.CycleSlot(-17)
	assert.Equal(t, 6, p.SelectedSlot())
}

func TestInventory(t *testing.T) {
	var inv Inventory
	assert.False(t, inv.Take(block.DirtBlockID), "пустой инвентарь")
	assert.Zero(t, inv.Count(block.DirtBlockID))

	inv.Add(block.DirtBlockID, 2)
	inv.Add(block.AirBlockID, 5)
	inv.Add(block.BlockCount+3, 1)
	assert.Equal(t, 2, inv.Total())

	assert.True(t, inv.Take(block.DirtBlockID))
	assert.True(t, inv.Take(block.DirtBlockID))
	assert.False(t, inv.Take(block.DirtBlockID))
	assert.Zero(t, inv.Count(block.DirtBlockID), "счётчик не уходит в минус")

	p := newTestPlayer(vec.Vec2Float{})
	p.PickupItem(block.CobblestoneBlockID)
	snap := p.Inventory.Snapshot()
	assert.Equal(t, 1, snap[7])
}

func TestSpawnAbove(t *testing.T) {
	cfg := DefaultPlayerConfig(tile)
	pos := SpawnAbove(3, 10, tile, cfg)
	assert.Equal(t, vec.Vec2Float{X: 96, Y: 320 - 64}, pos)
}
