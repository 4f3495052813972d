package physics

import (
	"testing"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/stretchr/testify/assert"
)

const tile = 32.0

// wall возвращает проверку, в которой твёрдыми являются только указанные тайлы
func wall(tiles ...vec.Vec2) SolidChecker {
	set := make(map[vec.Vec2]struct{}, len(tiles))
	for _, t := range tiles {
		set[t] = struct{}{}
	}
	return func(col, row int) bool {
		_, ok := set[vec.Vec2{X: col, Y: row}]
		return ok
	}
}

func TestSpanTiles(t *testing.T) {
	first, last := SpanTiles(0, 64, tile)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, last, "тело высотой 64 от 0 занимает строки 0..1")

	first, last = SpanTiles(10, 64, tile)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)
}

func TestResolveHorizontal_FreeMove(t *testing.T) {
	box := NewBoxCollider(32, 64)
	x, blocked := ResolveHorizontal(vec.Vec2Float{X: 100, Y: 0}, 5, box, tile, wall())
	assert.False(t, blocked)
	assert.Equal(t, 105.0, x)
}

func TestResolveHorizontal_RightWall(t *testing.T) {
	box := NewBoxCollider(32, 64)
	// Тело стоит в строках 0..1, стена в колонке 5 строки 1
	solid := wall(vec.Vec2{X: 5, Y: 1})

	x, blocked := ResolveHorizontal(vec.Vec2Float{X: 126, Y: 0}, 5, box, tile, solid)
	assert.True(t, blocked)
	assert.Equal(t, 5*tile-32, x, "правая кромка должна упереться в колонку 5")
}

func TestResolveHorizontal_LeftWall(t *testing.T) {
	box := NewBoxCollider(32, 64)
	solid := wall(vec.Vec2{X: 2, Y: 0})

	x, blocked := ResolveHorizontal(vec.Vec2Float{X: 97, Y: 0}, -5, box, tile, solid)
	assert.True(t, blocked)
	assert.Equal(t, 3*tile, x, "левая кромка должна упереться в колонку 2 справа")
}

func TestResolveVertical_Landing(t *testing.T) {
	box := NewBoxCollider(32, 64)
	solid := wall(vec.Vec2{X: 3, Y: 5})

	y, hit := ResolveVertical(vec.Vec2Float{X: 96, Y: 90}, 10, box, tile, solid)
	assert.True(t, hit)
	assert.Equal(t, 5*tile-64, y)
}

func TestResolveVertical_HeadBump(t *testing.T) {
	box := NewBoxCollider(32, 64)
	solid := wall(vec.Vec2{X: 3, Y: 1})

	y, hit := ResolveVertical(vec.Vec2Float{X: 100, Y: 70}, -15, box, tile, solid)
	assert.True(t, hit, "тело, покрывающее колонки 3..4, должно удариться о тайл (3,1)")
	assert.Equal(t, 2*tile, y)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 4.0, Clamp(4, 0, 10))
}
