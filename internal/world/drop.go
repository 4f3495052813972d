package world

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/annel0/tile-sandbox/internal/vec"
	"github.com/annel0/tile-sandbox/internal/world/block"
)

// DropPhysics: параметры физики выпавших предметов (в пикселях за тик)
type DropPhysics struct {
	Size             float64 // Сторона квадрата предмета
	Gravity          float64 // Ускорение вниз, без ограничения скорости
	Friction         float64 // Множитель горизонтальной скорости при касании земли
	SpawnVelocityY   float64 // Начальная вертикальная скорость (вверх: отрицательная)
	MaxSpawnSpeedX   float64 // Горизонтальная скорость равномерна в [-Max, Max]
	BobbingSpeed     float64 // Прирост фазы покачивания за тик (рад)
	BobbingAmplitude float64 // Амплитуда покачивания при отрисовке
}

// DefaultDropPhysics возвращает параметры для тайла указанного размера
func DefaultDropPhysics(tileSize float64) DropPhysics {
	return DropPhysics{
		Size:             tileSize / 2,
		Gravity:          0.4,
		Friction:         0.8,
		SpawnVelocityY:   -4,
		MaxSpawnSpeedX:   2,
		BobbingSpeed:     0.1,
		BobbingAmplitude: 3,
	}
}

// ItemDrop: выпавший предмет. Pos: левый верхний угол квадрата предмета.
type ItemDrop struct {
	ID       uuid.UUID
	Kind     block.BlockID
	Pos      vec.Vec2Float
	Velocity vec.Vec2Float
	Size     float64
	Bobbing  float64 // Фаза косметического покачивания, в коллизиях не участвует
}

// newItemDrop создаёт предмет в точке spawn со случайным горизонтальным импульсом
func newItemDrop(kind block.BlockID, spawn vec.Vec2Float, rng *rand.Rand, p DropPhysics) *ItemDrop {
	vx := 0.0
	if p.MaxSpawnSpeedX > 0 {
		vx = (rng.Float64()*2 - 1) * p.MaxSpawnSpeedX
	}
	return &ItemDrop{
		ID:       uuid.New(),
		Kind:     kind,
		Pos:      spawn,
		Velocity: vec.Vec2Float{X: vx, Y: p.SpawnVelocityY},
		Size:     p.Size,
	}
}

// Update интегрирует движение предмета на один тик.
// Проверяется только тайл под предметом: (x, y+size).
func (d *ItemDrop) Update(grid *Grid, tileSize float64, p DropPhysics) {
	d.Velocity.Y += p.Gravity
	d.Pos = d.Pos.Add(d.Velocity)

	below := vec.Vec2Float{X: d.Pos.X, Y: d.Pos.Y + d.Size}.ToTile(tileSize)
	if grid.IsSolid(below.X, below.Y) {
		d.Pos.Y = float64(below.Y)*tileSize - d.Size
		d.Velocity.Y = 0
		d.Velocity.X *= p.Friction
	}

	d.Bobbing += p.BobbingSpeed
}

// Center возвращает центр предмета
func (d *ItemDrop) Center() vec.Vec2Float {
	return vec.Vec2Float{X: d.Pos.X + d.Size/2, Y: d.Pos.Y + d.Size/2}
}

// BobOffset возвращает вертикальное смещение для отрисовки
func (d *ItemDrop) BobOffset(amplitude float64) float64 {
	return math.Sin(d.Bobbing) * amplitude
}
